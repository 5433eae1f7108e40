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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stellarburgers/api-tests/pkg/openapi"
	"github.com/stellarburgers/api-tests/test/api"
)

var _ = Describe("Ingredients Catalog", func() {
	Context("When reading the catalog", func() {
		Describe("Given no authorization", func() {
			It("should list well formed ingredients", func() {
				resp, err := ingredients.GetIngredients(ctx)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				catalog := api.Decode[api.IngredientsResponse](resp)
				Expect(catalog.Success).To(BeTrue())
				Expect(catalog.Data).NotTo(BeEmpty())

				for _, ingredient := range catalog.Data {
					Expect(openapi.IsObjectID(ingredient.ID)).To(BeTrue(), "malformed ingredient ID %q", ingredient.ID)
					Expect(ingredient.Name).NotTo(BeEmpty())
					Expect(ingredient.Type).To(BeElementOf("bun", "main", "sauce"))
					Expect(ingredient.Price).To(BeNumerically(">", 0))
				}

				Expect(catalog.Data).To(ContainElement(HaveField("Type", "bun")))
				Expect(catalog.Data).NotTo(ContainElement(HaveField("ID", api.InvalidIngredientID)))
			})
		})
	})
})
