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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// ResponseValidator checks a response against the API schema.
type ResponseValidator interface {
	ValidateResponse(ctx context.Context, req *http.Request, path string, status int, header http.Header, body []byte) error
}

// VerifySchema checks the response is documented.  A nil validator
// disables the check.
func VerifySchema(ctx context.Context, validator ResponseValidator, resp *Response) {
	GinkgoHelper()

	if validator == nil {
		return
	}

	Expect(validator.ValidateResponse(ctx, resp.Request, resp.Path, resp.StatusCode, resp.Header, resp.Body)).To(Succeed(), "schema violation: %s", resp)
}

// ExpectStatus asserts on the status code, reporting the whole exchange
// on failure.
func ExpectStatus(resp *Response, status int) {
	GinkgoHelper()

	Expect(resp.StatusCode).To(Equal(status), "unexpected response: %s", resp)
}

// Decode unmarshals the response body or fails the test.
func Decode[T any](resp *Response) *T {
	GinkgoHelper()

	var v T

	Expect(resp.Decode(&v)).To(Succeed())

	return &v
}

// VerifyErrorResponse checks the error envelope.
func VerifyErrorResponse(resp *Response, status int, message string) {
	GinkgoHelper()

	ExpectStatus(resp, status)

	body := Decode[ErrorResponse](resp)
	Expect(body.Success).To(BeFalse())
	Expect(body.Message).To(Equal(message))
}

// VerifyAuthResponse checks a token pair was issued for the given user.
// The service stores emails lower cased.
func VerifyAuthResponse(auth *AuthResponse, email, name string) {
	GinkgoHelper()

	Expect(auth.Success).To(BeTrue())
	Expect(auth.AccessToken).To(HavePrefix("Bearer "))
	Expect(auth.RefreshToken).NotTo(BeEmpty())
	Expect(auth.User.Email).To(Equal(strings.ToLower(email)))
	Expect(auth.User.Name).To(Equal(name))
}

// VerifyOrderResponse checks the minimum every created order carries.
func VerifyOrderResponse(order *OrderResponse) {
	GinkgoHelper()

	Expect(order.Success).To(BeTrue())
	Expect(order.Name).NotTo(BeEmpty())
	Expect(order.Order.Number).To(BeNumerically(">", 0))
}

// VerifyOrderEntries checks every listed order is complete.
func VerifyOrderEntries(orders []Order) {
	GinkgoHelper()

	for _, order := range orders {
		Expect(order.ID).NotTo(BeEmpty())
		Expect(order.Number).To(BeNumerically(">", 0))
		Expect(order.Status).NotTo(BeEmpty())
		Expect(order.CreatedAt).NotTo(BeNil())
		Expect(order.UpdatedAt).NotTo(BeNil())
	}
}

// DeferSessionTeardown schedules deletion of whichever user the session
// holds credentials for when the test ends.  The session is always
// cleared afterwards.
func DeferSessionTeardown(ctx context.Context, users *UserClient, session *Session) {
	DeferCleanup(func() {
		defer session.Clear()

		if !session.Authenticated() {
			return
		}

		resp, err := users.DeleteUser(ctx, session.AccessToken())
		Expect(err).NotTo(HaveOccurred())

		// Transport failures fail the test above, a refused delete is only
		// reported, as the cleanup status was never asserted on.
		if !resp.Success() {
			GinkgoWriter.Printf("Warning: failed to delete user: %s\n", resp)
			return
		}

		GinkgoWriter.Printf("Successfully deleted user (trace ID: %s)\n", resp.TraceID())
	})
}

// RegisterUser registers the user and stores the tokens in the session.
func RegisterUser(ctx context.Context, users *UserClient, session *Session, user UserRegistration) *AuthResponse {
	GinkgoHelper()

	resp, err := users.Register(ctx, user)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusOK)

	auth := Decode[AuthResponse](resp)
	session.Store(auth)

	return auth
}

// RegisterUserWithCleanup registers the user in a session of its own
// that is torn down when the test ends.
func RegisterUserWithCleanup(ctx context.Context, users *UserClient, user UserRegistration) (*AuthResponse, *Session) {
	GinkgoHelper()

	session := NewSession()

	DeferSessionTeardown(ctx, users, session)

	return RegisterUser(ctx, users, session, user), session
}

// ValidIngredientIDs reads the catalog and returns up to n ingredient IDs
// from the front of it.
func ValidIngredientIDs(ctx context.Context, ingredients *IngredientClient, n int) []string {
	GinkgoHelper()

	resp, err := ingredients.GetIngredients(ctx)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusOK)

	catalog := Decode[IngredientsResponse](resp)
	Expect(catalog.Data).NotTo(BeEmpty(), "ingredient catalog is empty")

	ids := make([]string, 0, n)

	for _, ingredient := range catalog.Data[:min(n, len(catalog.Data))] {
		ids = append(ids, ingredient.ID)
	}

	return ids
}

// CreateOrderFixture places an order as the session's user.
func CreateOrderFixture(ctx context.Context, orders *OrderClient, session *Session, ingredientIDs []string) *OrderResponse {
	GinkgoHelper()

	resp, err := orders.CreateOrder(ctx, session.AccessToken(), OrderRequest{Ingredients: ingredientIDs})
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusOK)

	order := Decode[OrderResponse](resp)
	VerifyOrderResponse(order)

	return order
}
