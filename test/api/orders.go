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

// OrderClient places and lists orders.
type OrderClient struct {
	client *Client
}

func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

func (o *OrderClient) CreateOrder(ctx context.Context, accessToken string, order OrderRequest) (*Response, error) {
	return o.client.Authorized(accessToken).Step("Create order").WithBody(order).Do(ctx, http.MethodPost, o.client.endpoints.Orders())
}

func (o *OrderClient) CreateOrderWithoutAuth(ctx context.Context, order OrderRequest) (*Response, error) {
	return o.client.Plain().Step("Create order without authorization").WithBody(order).Do(ctx, http.MethodPost, o.client.endpoints.Orders())
}

func (o *OrderClient) GetUserOrders(ctx context.Context, accessToken string) (*Response, error) {
	return o.client.Authorized(accessToken).Step("Get user orders").Do(ctx, http.MethodGet, o.client.endpoints.Orders())
}

func (o *OrderClient) GetUserOrdersWithoutAuth(ctx context.Context) (*Response, error) {
	return o.client.Plain().Step("Get user orders without authorization").Do(ctx, http.MethodGet, o.client.endpoints.Orders())
}

// GetAllOrders reads the public feed of recent orders.
func (o *OrderClient) GetAllOrders(ctx context.Context) (*Response, error) {
	return o.client.Plain().Step("Get all orders").Do(ctx, http.MethodGet, o.client.endpoints.AllOrders())
}
