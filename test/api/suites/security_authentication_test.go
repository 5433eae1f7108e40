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

var _ = Describe("Security and Authentication", func() {
	endpoints := api.NewEndpoints()

	Context("When accessing protected endpoints", func() {
		Describe("Given missing authentication", func() {
			DescribeTable("should reject the request",
				func(method, path string) {
					resp, err := client.Plain().Step("Unauthenticated "+method+" "+path).Do(ctx, method, path)
					Expect(err).NotTo(HaveOccurred())
					api.VerifyErrorResponse(resp, http.StatusUnauthorized, api.MessageUnauthorised)
					api.VerifySchema(ctx, validator, resp)
				},
				Entry("when reading the profile", http.MethodGet, endpoints.User()),
				Entry("when updating the profile", http.MethodPatch, endpoints.User()),
				Entry("when deleting the profile", http.MethodDelete, endpoints.User()),
				Entry("when listing own orders", http.MethodGet, endpoints.Orders()),
			)
		})

		Describe("Given a malformed token", func() {
			DescribeTable("should reject the request",
				func(method, path string) {
					resp, err := client.Authorized("Bearer garbage").Step("Malformed token "+method+" "+path).Do(ctx, method, path)
					Expect(err).NotTo(HaveOccurred())
					Expect(resp.StatusCode).To(BeElementOf(http.StatusUnauthorized, http.StatusForbidden), resp.String())
					api.VerifySchema(ctx, validator, resp)

					Expect(api.Decode[api.ErrorResponse](resp).Success).To(BeFalse())
				},
				Entry("when reading the profile", http.MethodGet, endpoints.User()),
				Entry("when updating the profile", http.MethodPatch, endpoints.User()),
				Entry("when deleting the profile", http.MethodDelete, endpoints.User()),
				Entry("when listing own orders", http.MethodGet, endpoints.Orders()),
			)
		})

		Describe("Given the token of a deleted user", func() {
			It("should reject the request", func() {
				api.RegisterUser(ctx, users, session, api.GenerateRandomUser())

				token := session.AccessToken()

				resp, err := users.DeleteUser(ctx, token)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Success()).To(BeTrue(), resp.String())

				// Nothing left to tear down.
				session.Clear()

				resp, err = users.GetUser(ctx, token)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.Success()).To(BeFalse(), resp.String())
				api.VerifySchema(ctx, validator, resp)

				Expect(api.Decode[api.ErrorResponse](resp).Success).To(BeFalse())
			})
		})
	})
})
