/*
Copyright 2026 the Stellar Burgers QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package store

const imageBase = "https://code.s3.yandex.net/react/code/"

func ingredient(id, name, label string, kind IngredientType, proteins, fat, carbohydrates, calories, price int, image string) Ingredient {
	return Ingredient{
		ID:            id,
		Name:          name,
		Type:          kind,
		Proteins:      proteins,
		Fat:           fat,
		Carbohydrates: carbohydrates,
		Calories:      calories,
		Price:         price,
		Image:         imageBase + image + ".png",
		ImageMobile:   imageBase + image + "-mobile.png",
		ImageLarge:    imageBase + image + "-large.png",
		Label:         label,
	}
}

// DefaultCatalog returns the seed ingredients.  Buns come first so the
// first few entries always make a plausible burger.
func DefaultCatalog() []Ingredient {
	return []Ingredient{
		ingredient("643d69a5c3f7b9001cfa093c", "Crater bun N-200i", "Crater", IngredientTypeBun, 80, 24, 53, 420, 1255, "bun-02"),
		ingredient("643d69a5c3f7b9001cfa0941", "Biocutlet from the Martian Magnolia", "Biocosmic", IngredientTypeMain, 420, 142, 242, 4242, 424, "meat-01"),
		ingredient("643d69a5c3f7b9001cfa0942", "Spicy-X sauce", "Spicy", IngredientTypeSauce, 30, 20, 40, 30, 90, "sauce-02"),
		ingredient("643d69a5c3f7b9001cfa093d", "Fluorescent bun R2-D3", "Fluorescent", IngredientTypeBun, 44, 26, 85, 643, 988, "bun-01"),
		ingredient("643d69a5c3f7b9001cfa093e", "Luminescent tetraodontimform fillet", "Luminescent", IngredientTypeMain, 44, 26, 85, 643, 988, "meat-03"),
		ingredient("643d69a5c3f7b9001cfa093f", "Immortal mollusc meat Protostomia", "Immortal", IngredientTypeMain, 433, 244, 33, 420, 1337, "meat-02"),
		ingredient("643d69a5c3f7b9001cfa0940", "Meteorite beef steak", "Meteorite", IngredientTypeMain, 800, 800, 300, 2674, 3000, "meat-04"),
		ingredient("643d69a5c3f7b9001cfa0943", "Space sauce", "Space", IngredientTypeSauce, 50, 22, 11, 14, 80, "sauce-04"),
		ingredient("643d69a5c3f7b9001cfa0944", "Traditional galactic sauce", "Galactic", IngredientTypeSauce, 42, 24, 42, 99, 15, "sauce-03"),
		ingredient("643d69a5c3f7b9001cfa0945", "Spiky antarian sauce with quint", "Antarian", IngredientTypeSauce, 101, 99, 100, 100, 88, "sauce-01"),
		ingredient("643d69a5c3f7b9001cfa0946", "Crispy mineral rings", "Mineral", IngredientTypeMain, 808, 689, 609, 986, 300, "mineral_rings"),
		ingredient("643d69a5c3f7b9001cfa0947", "Fallenian tree fruits", "Fallenian", IngredientTypeMain, 20, 5, 55, 77, 874, "sp_1"),
		ingredient("643d69a5c3f7b9001cfa0948", "Alpha-saturnian square crystals", "Crystal", IngredientTypeMain, 371, 444, 222, 2864, 76, "core"),
		ingredient("643d69a5c3f7b9001cfa0949", "Exo-plantago mini salad", "Exo", IngredientTypeMain, 1, 2, 3, 6, 4400, "salad"),
		ingredient("643d69a5c3f7b9001cfa094a", "Cheese with astro mould", "Astro", IngredientTypeMain, 84, 48, 420, 3377, 4142, "cheese"),
	}
}
