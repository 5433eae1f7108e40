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
	"time"
)

// UserRegistration is the body of a registration request.  Empty fields
// are omitted so incomplete registrations can be expressed.
type UserRegistration struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}

// UserCredentials is the body of a login request.
type UserCredentials struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// UserUpdate is a partial profile update, nil fields are not sent.
type UserUpdate struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
}

type LogoutRequest struct {
	Token string `json:"token"`
}

type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by registration and login.  The access token
// carries its "Bearer " scheme prefix.
type AuthResponse struct {
	Success      bool   `json:"success"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         User   `json:"user"`
}

type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type Ingredient struct {
	ID            string `json:"_id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Proteins      int    `json:"proteins"`
	Fat           int    `json:"fat"`
	Carbohydrates int    `json:"carbohydrates"`
	Calories      int    `json:"calories"`
	Price         int    `json:"price"`
	Image         string `json:"image"`
	ImageMobile   string `json:"image_mobile"`
	ImageLarge    string `json:"image_large"`
	Version       int    `json:"__v"`
}

type IngredientsResponse struct {
	Success bool         `json:"success"`
	Data    []Ingredient `json:"data"`
}

// OrderRequest lists ingredient IDs.  A nil list is sent as null and an
// empty one as [], the service rejects both.
type OrderRequest struct {
	Ingredients []string `json:"ingredients"`
}

// Order is an entry in an order listing.
type Order struct {
	ID          string     `json:"_id"`
	Ingredients []string   `json:"ingredients"`
	Status      string     `json:"status"`
	Name        string     `json:"name"`
	Number      int        `json:"number"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

type OrderOwner struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// CreatedOrder is the order echoed back on creation.  Anonymous callers
// only get the number, everything else stays zero.
type CreatedOrder struct {
	ID          string       `json:"_id"`
	Ingredients []Ingredient `json:"ingredients"`
	Owner       *OrderOwner  `json:"owner"`
	Status      string       `json:"status"`
	Name        string       `json:"name"`
	Number      int          `json:"number"`
	Price       int          `json:"price"`
	CreatedAt   *time.Time   `json:"createdAt"`
	UpdatedAt   *time.Time   `json:"updatedAt"`
}

type OrderResponse struct {
	Success bool         `json:"success"`
	Name    string       `json:"name"`
	Order   CreatedOrder `json:"order"`
}

type OrdersListResponse struct {
	Success    bool    `json:"success"`
	Orders     []Order `json:"orders"`
	Total      int     `json:"total"`
	TotalToday int     `json:"totalToday"`
}
