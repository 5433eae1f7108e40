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
	"errors"
	"net/http"

	"github.com/stellarburgers/api-tests/pkg/server/store"
)

// Messages the service puts in its error envelope.
const (
	MessageUserExists          = "User already exists"
	MessageRequiredFields      = "Email, password and name are required fields"
	MessageIncorrectLogin      = "email or password are incorrect"
	MessageUnauthorised        = "You should be authorised"
	MessageEmailTaken          = "User with such email already exists"
	MessageUserNotFound        = "User not found"
	MessageTokenRequired       = "Token required"
	MessageIngredientsRequired = "Ingredient ids must be provided"
	MessageIngredientsInvalid  = "One or more ids provided are incorrect"
	MessageInternalError       = "Internal Server Error"
	MessageNotFound            = "Not found"
	MessageLogout              = "Successful logout"
	MessageUserRemoved         = "User successfully removed"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Add("Cache-Control", "no-cache")
	w.WriteHeader(status)

	//nolint:errchkjson
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, &errorResponse{Message: message})
}

// handleStoreError translates store errors into the service's status codes.
func (h *Handler) handleStoreError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrMissingFields):
		writeError(w, http.StatusForbidden, MessageRequiredFields)
	case errors.Is(err, store.ErrUserExists):
		writeError(w, http.StatusForbidden, MessageUserExists)
	case errors.Is(err, store.ErrEmailTaken):
		writeError(w, http.StatusForbidden, MessageEmailTaken)
	case errors.Is(err, store.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, MessageIncorrectLogin)
	case errors.Is(err, store.ErrUserNotFound):
		writeError(w, http.StatusNotFound, MessageUserNotFound)
	case errors.Is(err, store.ErrTokenNotFound):
		writeError(w, http.StatusNotFound, MessageTokenRequired)
	case errors.Is(err, store.ErrNoIngredients):
		writeError(w, http.StatusBadRequest, MessageIngredientsRequired)
	case errors.Is(err, store.ErrUnknownIngredient):
		writeError(w, http.StatusBadRequest, MessageIngredientsInvalid)
	default:
		h.logger.Error("request failed", requestFields(r, err)...)
		writeError(w, http.StatusInternalServerError, MessageInternalError)
	}
}
