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

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stellarburgers/api-tests/test/api"
)

var _ = Describe("Order Listing", func() {
	var created *api.OrderResponse

	BeforeEach(func() {
		api.RegisterUser(ctx, users, session, api.GenerateRandomUser())

		created = api.CreateOrderFixture(ctx, orders, session, api.ValidIngredientIDs(ctx, ingredients, config.OrderIngredientCount))
	})

	Context("When listing the user's orders", func() {
		Describe("Given a valid access token", func() {
			It("should include the order just placed", func() {
				resp, err := orders.GetUserOrders(ctx, session.AccessToken())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				list := api.Decode[api.OrdersListResponse](resp)
				Expect(list.Success).To(BeTrue())
				Expect(list.Orders).NotTo(BeEmpty())

				api.VerifyOrderEntries(list.Orders)

				Expect(list.Orders).To(ContainElement(HaveField("Number", created.Order.Number)))
			})
		})

		Describe("Given no authorization", func() {
			It("should be rejected", func() {
				resp, err := orders.GetUserOrdersWithoutAuth(ctx)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyErrorResponse(resp, http.StatusUnauthorized, api.MessageUnauthorised)
				api.VerifySchema(ctx, validator, resp)
			})
		})
	})

	Context("When listing all orders", func() {
		Describe("Given no authorization", func() {
			It("should return the feed with running totals", func() {
				resp, err := orders.GetAllOrders(ctx)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				list := api.Decode[api.OrdersListResponse](resp)
				Expect(list.Success).To(BeTrue())
				Expect(list.Total).To(BeNumerically(">", 0))
				Expect(list.TotalToday).To(BeNumerically(">=", 0))
				Expect(list.Orders).NotTo(BeEmpty())

				api.VerifyOrderEntries(list.Orders)
			})
		})
	})
})
