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

package api

import (
	"context"
	"net/http"
)

type IngredientClient struct {
	client *Client
}

func NewIngredientClient(client *Client) *IngredientClient {
	return &IngredientClient{client: client}
}

func (i *IngredientClient) GetIngredients(ctx context.Context) (*Response, error) {
	return i.client.Plain().Step("Get ingredients").Do(ctx, http.MethodGet, i.client.endpoints.Ingredients())
}
