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

// UserClient covers registration, login and the profile endpoints.
type UserClient struct {
	client *Client
}

func NewUserClient(client *Client) *UserClient {
	return &UserClient{client: client}
}

func (u *UserClient) Register(ctx context.Context, user UserRegistration) (*Response, error) {
	return u.client.Plain().Step("Register user").WithBody(user).Do(ctx, http.MethodPost, u.client.endpoints.Register())
}

func (u *UserClient) Login(ctx context.Context, credentials UserCredentials) (*Response, error) {
	return u.client.Plain().Step("Log in").WithBody(credentials).Do(ctx, http.MethodPost, u.client.endpoints.Login())
}

// Logout invalidates the refresh token.
func (u *UserClient) Logout(ctx context.Context, refreshToken string) (*Response, error) {
	return u.client.Plain().Step("Log out").WithBody(LogoutRequest{Token: refreshToken}).Do(ctx, http.MethodPost, u.client.endpoints.Logout())
}

func (u *UserClient) GetUser(ctx context.Context, accessToken string) (*Response, error) {
	return u.client.Authorized(accessToken).Step("Get user").Do(ctx, http.MethodGet, u.client.endpoints.User())
}

func (u *UserClient) GetUserWithoutAuth(ctx context.Context) (*Response, error) {
	return u.client.Plain().Step("Get user without authorization").Do(ctx, http.MethodGet, u.client.endpoints.User())
}

func (u *UserClient) UpdateUser(ctx context.Context, accessToken string, update UserUpdate) (*Response, error) {
	return u.client.Authorized(accessToken).Step("Update user").WithBody(update).Do(ctx, http.MethodPatch, u.client.endpoints.User())
}

func (u *UserClient) UpdateUserWithoutAuth(ctx context.Context, update UserUpdate) (*Response, error) {
	return u.client.Plain().Step("Update user without authorization").WithBody(update).Do(ctx, http.MethodPatch, u.client.endpoints.User())
}

func (u *UserClient) DeleteUser(ctx context.Context, accessToken string) (*Response, error) {
	return u.client.Authorized(accessToken).Step("Delete user").Do(ctx, http.MethodDelete, u.client.endpoints.User())
}
