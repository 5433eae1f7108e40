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

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type logoutRequest struct {
	Token string `json:"token"`
}

type updateUserRequest struct {
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Name     *string `json:"name,omitempty"`
}

type userBody struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	Success      bool     `json:"success"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         userBody `json:"user"`
}

type userResponse struct {
	Success bool     `json:"success"`
	User    userBody `json:"user"`
}

type ownerBody struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func convertUser(u *store.User) userBody {
	return userBody{
		Email: u.Email,
		Name:  u.Name,
	}
}

func convertOwner(u *store.User) *ownerBody {
	return &ownerBody{
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// issue writes a fresh token pair for the user.
func (h *Handler) issue(w http.ResponseWriter, r *http.Request, user *store.User) {
	accessToken, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	refreshToken, err := h.store.IssueRefreshToken(user.ID)
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &authResponse{
		Success:      true,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         convertUser(user),
	})
}

// PostRegister handles POST /auth/register.
func (h *Handler) PostRegister(w http.ResponseWriter, r *http.Request) {
	var request registerRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusForbidden, MessageRequiredFields)
		return
	}

	user, err := h.store.Register(request.Email, request.Password, request.Name)
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	h.issue(w, r, user)
}

// PostLogin handles POST /auth/login.
func (h *Handler) PostLogin(w http.ResponseWriter, r *http.Request) {
	var request loginRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusUnauthorized, MessageIncorrectLogin)
		return
	}

	user, err := h.store.Authenticate(request.Email, request.Password)
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	h.issue(w, r, user)
}

// PostLogout handles POST /auth/logout.
func (h *Handler) PostLogout(w http.ResponseWriter, r *http.Request) {
	var request logoutRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Token == "" {
		writeError(w, http.StatusNotFound, MessageTokenRequired)
		return
	}

	if err := h.store.RevokeRefreshToken(request.Token); err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &messageResponse{Success: true, Message: MessageLogout})
}

// GetUser handles GET /auth/user.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.User(userIDFromContext(r.Context()))
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &userResponse{Success: true, User: convertUser(user)})
}

// PatchUser handles PATCH /auth/user.
func (h *Handler) PatchUser(w http.ResponseWriter, r *http.Request) {
	var request updateUserRequest

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	patch := store.UserPatch{
		Email:    request.Email,
		Password: request.Password,
		Name:     request.Name,
	}

	user, err := h.store.UpdateUser(userIDFromContext(r.Context()), patch)
	if err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, &userResponse{Success: true, User: convertUser(user)})
}

// DeleteUser handles DELETE /auth/user.  The service acknowledges with
// 202 and the user is gone by the time the response is read.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteUser(userIDFromContext(r.Context())); err != nil {
		h.handleStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, &messageResponse{Success: true, Message: MessageUserRemoved})
}
