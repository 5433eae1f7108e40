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

// Header names and values sent with every request.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderTraceparent   = "Traceparent"
	HeaderTracestate    = "Tracestate"

	ContentTypeJSON = "application/json"
)

// Endpoints contains all API endpoint paths, relative to the base path.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Authentication endpoints.
func (e *Endpoints) Register() string {
	return "/auth/register"
}

func (e *Endpoints) Login() string {
	return "/auth/login"
}

func (e *Endpoints) Logout() string {
	return "/auth/logout"
}

// User returns the profile of whoever the token belongs to.
func (e *Endpoints) User() string {
	return "/auth/user"
}

// Catalog endpoints.
func (e *Endpoints) Ingredients() string {
	return "/ingredients"
}

// Order endpoints.
func (e *Endpoints) Orders() string {
	return "/orders"
}

func (e *Endpoints) AllOrders() string {
	return "/orders/all"
}
