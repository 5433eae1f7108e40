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

import (
	"errors"
	"time"
)

var (
	ErrMissingFields        = errors.New("email, password and name are required")
	ErrUserExists           = errors.New("user already exists")
	ErrEmailTaken           = errors.New("email belongs to another user")
	ErrInvalidCredentials   = errors.New("email or password are incorrect")
	ErrUserNotFound         = errors.New("user not found")
	ErrTokenNotFound        = errors.New("refresh token not found")
	ErrNoIngredients        = errors.New("no ingredients provided")
	ErrUnknownIngredient    = errors.New("unknown ingredient")
	ErrMalformedIngredient  = errors.New("malformed ingredient id")
	ErrPasswordUnacceptable = errors.New("password cannot be hashed")
)

// User is a registered account.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch is a partial update, nil fields are left untouched.
type UserPatch struct {
	Email    *string
	Password *string
	Name     *string
}

// IngredientType classifies catalog entries.
type IngredientType string

const (
	IngredientTypeBun   IngredientType = "bun"
	IngredientTypeMain  IngredientType = "main"
	IngredientTypeSauce IngredientType = "sauce"
)

// Ingredient is a catalog entry, serialized exactly as the service does.
type Ingredient struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Type          IngredientType `json:"type"`
	Proteins      int            `json:"proteins"`
	Fat           int            `json:"fat"`
	Carbohydrates int            `json:"carbohydrates"`
	Calories      int            `json:"calories"`
	Price         int            `json:"price"`
	Image         string         `json:"image"`
	ImageMobile   string         `json:"image_mobile"`
	ImageLarge    string         `json:"image_large"`
	Version       int            `json:"__v"`

	// Label contributes to generated order names.
	Label string `json:"-"`
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusCreated OrderStatus = "created"
	OrderStatusPending OrderStatus = "pending"
	OrderStatusDone    OrderStatus = "done"
)

// Order is a placed order.  OwnerID is empty for anonymous orders.
type Order struct {
	ID            string
	IngredientIDs []string
	OwnerID       string
	Status        OrderStatus
	Name          string
	Number        int
	Price         int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
