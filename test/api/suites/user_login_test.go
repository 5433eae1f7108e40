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

var _ = Describe("User Login", func() {
	var user api.UserRegistration

	BeforeEach(func() {
		user = api.GenerateRandomUser()

		api.RegisterUser(ctx, users, session, user)
	})

	Context("When logging in", func() {
		Describe("Given valid credentials", func() {
			It("should issue tokens for the same user", func() {
				resp, err := users.Login(ctx, api.ToCredentials(user))
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				auth := api.Decode[api.AuthResponse](resp)
				session.Store(auth)

				api.VerifyAuthResponse(auth, user.Email, user.Name)

				// The new access token identifies the registered user.
				resp, err = users.GetUser(ctx, session.AccessToken())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)

				profile := api.Decode[api.UserResponse](resp)
				Expect(profile.User).To(Equal(auth.User))
			})
		})

		Describe("Given invalid credentials", func() {
			DescribeTable("should reject the login",
				func(credentials func(api.UserRegistration) api.UserCredentials) {
					resp, err := users.Login(ctx, credentials(user))
					Expect(err).NotTo(HaveOccurred())
					api.VerifyErrorResponse(resp, http.StatusUnauthorized, api.MessageIncorrectLogin)
					api.VerifySchema(ctx, validator, resp)
				},
				Entry("with an unknown email", func(u api.UserRegistration) api.UserCredentials {
					return api.UserCredentials{Email: api.GenerateRandomEmail(), Password: u.Password}
				}),
				Entry("with a wrong password", func(u api.UserRegistration) api.UserCredentials {
					return api.UserCredentials{Email: u.Email, Password: api.GenerateRandomPassword()}
				}),
				Entry("without an email", func(u api.UserRegistration) api.UserCredentials {
					return api.UserCredentials{Password: u.Password}
				}),
				Entry("without a password", func(u api.UserRegistration) api.UserCredentials {
					return api.UserCredentials{Email: u.Email}
				}),
			)
		})
	})

	Context("When logging out", func() {
		Describe("Given the refresh token of the session", func() {
			It("should acknowledge the logout", func() {
				resp, err := users.Logout(ctx, session.RefreshToken())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				Expect(api.Decode[api.MessageResponse](resp).Success).To(BeTrue())
			})
		})
	})
})
