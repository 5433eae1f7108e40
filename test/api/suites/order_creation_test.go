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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stellarburgers/api-tests/test/api"
)

var _ = Describe("Order Creation", func() {
	var (
		user          api.UserRegistration
		ingredientIDs []string
	)

	BeforeEach(func() {
		user = api.GenerateRandomUser()

		api.RegisterUser(ctx, users, session, user)

		ingredientIDs = api.ValidIngredientIDs(ctx, ingredients, config.OrderIngredientCount)
	})

	Context("When creating an order", func() {
		Describe("Given valid ingredients and authorization", func() {
			It("should create an order owned by the user", func() {
				resp, err := orders.CreateOrder(ctx, session.AccessToken(), api.OrderRequest{Ingredients: ingredientIDs})
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				order := api.Decode[api.OrderResponse](resp)
				api.VerifyOrderResponse(order)

				Expect(order.Order.Owner).NotTo(BeNil())
				Expect(order.Order.Owner.Email).To(Equal(strings.ToLower(user.Email)))
				Expect(order.Order.Ingredients).To(HaveLen(len(ingredientIDs)))
			})
		})

		Describe("Given valid ingredients and no authorization", func() {
			It("should still create the order", func() {
				resp, err := orders.CreateOrderWithoutAuth(ctx, api.OrderRequest{Ingredients: ingredientIDs})
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				api.VerifyOrderResponse(api.Decode[api.OrderResponse](resp))
			})
		})

		Describe("Given no ingredients", func() {
			DescribeTable("should be rejected",
				func(request api.OrderRequest) {
					resp, err := orders.CreateOrder(ctx, session.AccessToken(), request)
					Expect(err).NotTo(HaveOccurred())
					api.VerifyErrorResponse(resp, http.StatusBadRequest, api.MessageIngredientsRequired)
					api.VerifySchema(ctx, validator, resp)
				},
				Entry("when the list is empty", api.OrderRequest{Ingredients: []string{}}),
				Entry("when the list is absent", api.OrderRequest{}),
			)
		})

		Describe("Given an unknown ingredient", func() {
			It("should be rejected", func() {
				resp, err := orders.CreateOrder(ctx, session.AccessToken(), api.OrderRequest{Ingredients: []string{api.InvalidIngredientID}})
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusBadRequest)
				api.VerifySchema(ctx, validator, resp)

				Expect(api.Decode[api.ErrorResponse](resp).Success).To(BeFalse())
			})
		})
	})
})
