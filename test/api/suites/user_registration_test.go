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

var _ = Describe("User Registration", func() {
	Context("When registering a new user", func() {
		Describe("Given unique user data", func() {
			It("should create the user and issue a token pair", func() {
				user := api.GenerateRandomUser()

				resp, err := users.Register(ctx, user)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				auth := api.Decode[api.AuthResponse](resp)
				session.Store(auth)

				api.VerifyAuthResponse(auth, user.Email, user.Name)
			})

			It("should store the email in lower case", func() {
				user := api.NewUser().WithEmail(api.GenerateMixedCaseEmail()).Build()

				auth := api.RegisterUser(ctx, users, session, user)

				Expect(auth.User.Email).To(Equal(strings.ToLower(user.Email)))
			})
		})

		Describe("Given an already registered user", func() {
			It("should reject the duplicate registration", func() {
				user := api.GenerateRandomUser()

				api.RegisterUser(ctx, users, session, user)

				resp, err := users.Register(ctx, user)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyErrorResponse(resp, http.StatusForbidden, api.MessageUserExists)
				api.VerifySchema(ctx, validator, resp)
			})
		})

		Describe("Given incomplete user data", func() {
			DescribeTable("should reject the registration",
				func(omit func(*api.UserBuilder) *api.UserBuilder) {
					resp, err := users.Register(ctx, omit(api.NewUser()).Build())
					Expect(err).NotTo(HaveOccurred())
					api.VerifyErrorResponse(resp, http.StatusForbidden, api.MessageRequiredFields)
					api.VerifySchema(ctx, validator, resp)
				},
				Entry("without an email", (*api.UserBuilder).WithoutEmail),
				Entry("without a password", (*api.UserBuilder).WithoutPassword),
				Entry("without a name", (*api.UserBuilder).WithoutName),
			)
		})
	})
})
