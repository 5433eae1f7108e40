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

package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/stellarburgers/api-tests/pkg/server/store"
)

type orderRequest struct {
	Ingredients []string `json:"ingredients"`
}

type ingredientsResponse struct {
	Success bool               `json:"success"`
	Data    []store.Ingredient `json:"data"`
}

// createdOrder is the full order returned to an authenticated caller.
type createdOrder struct {
	ID          string             `json:"_id,omitempty"`
	Ingredients []store.Ingredient `json:"ingredients,omitempty"`
	Owner       *ownerBody         `json:"owner,omitempty"`
	Status      store.OrderStatus  `json:"status,omitempty"`
	Name        string             `json:"name,omitempty"`
	Number      int                `json:"number"`
	Price       int                `json:"price,omitempty"`
	CreatedAt   *time.Time         `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time         `json:"updatedAt,omitempty"`
}

type orderResponse struct {
	Success bool         `json:"success"`
	Name    string       `json:"name"`
	Order   createdOrder `json:"order"`
}

type orderBody struct {
	ID          string            `json:"_id"`
	Ingredients []string          `json:"ingredients"`
	Status      store.OrderStatus `json:"status"`
	Name        string            `json:"name"`
	Number      int               `json:"number"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type ordersListResponse struct {
	Success    bool        `json:"success"`
	Orders     []orderBody `json:"orders"`
	Total      int         `json:"total"`
	TotalToday int         `json:"totalToday"`
}

func convertOrders(in []store.Order) []orderBody {
	out := make([]orderBody, len(in))

	for i := range in {
		out[i] = orderBody{
			ID:          in[i].ID,
			Ingredients: in[i].IngredientIDs,
			Status:      in[i].Status,
			Name:        in[i].Name,
			Number:      in[i].Number,
			CreatedAt:   in[i].CreatedAt,
			UpdatedAt:   in[i].UpdatedAt,
		}
	}

	return out
}

func convertPage(page *store.OrderPage) *ordersListResponse {
	return &ordersListResponse{
		Success:    true,
		Orders:     convertOrders(page.Orders),
		Total:      page.Total,
		TotalToday: page.TotalToday,
	}
}

// GetIngredients handles GET /ingredients.
func (h *Handler) GetIngredients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, &ingredientsResponse{Success: true, Data: h.store.Ingredients()})
}

// PostOrder handles POST /orders.  Anonymous callers only learn the
// order number, owners get the whole order back.
func (h *Handler) PostOrder(w http.ResponseWriter, r *http.Request) {
	var request orderRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, MessageIngredientsRequired)
		return
	}

	ownerID := userIDFromContext(r.Context())

	order, ingredients, err := h.store.CreateOrder(ownerID, request.Ingredients)
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	response := &orderResponse{
		Success: true,
		Name:    order.Name,
		Order: createdOrder{
			Number: order.Number,
		},
	}

	if ownerID != "" {
		owner, err := h.store.User(ownerID)
		if err != nil {
			h.handleStoreError(w, r, err)
			return
		}

		response.Order = createdOrder{
			ID:          order.ID,
			Ingredients: ingredients,
			Owner:       convertOwner(owner),
			Status:      order.Status,
			Name:        order.Name,
			Number:      order.Number,
			Price:       order.Price,
			CreatedAt:   &order.CreatedAt,
			UpdatedAt:   &order.UpdatedAt,
		}
	}

	writeJSON(w, http.StatusOK, response)
}

// GetOrders handles GET /orders.
func (h *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	page, err := h.store.UserOrders(userIDFromContext(r.Context()))
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, convertPage(page))
}

// GetAllOrders handles GET /orders/all.
func (h *Handler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, convertPage(h.store.AllOrders()))
}
