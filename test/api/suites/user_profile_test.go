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

// loginSucceeds checks the credentials are accepted, refreshing the session.
func loginSucceeds(credentials api.UserCredentials) {
	GinkgoHelper()

	resp, err := users.Login(ctx, credentials)
	Expect(err).NotTo(HaveOccurred())
	api.ExpectStatus(resp, http.StatusOK)

	session.Store(api.Decode[api.AuthResponse](resp))
}

var _ = Describe("User Profile", func() {
	var user api.UserRegistration

	BeforeEach(func() {
		user = api.GenerateRandomUser()

		api.RegisterUser(ctx, users, session, user)
	})

	Context("When reading the profile", func() {
		Describe("Given a valid access token", func() {
			It("should return the user", func() {
				resp, err := users.GetUser(ctx, session.AccessToken())
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				profile := api.Decode[api.UserResponse](resp)
				Expect(profile.Success).To(BeTrue())
				Expect(profile.User.Email).To(Equal(strings.ToLower(user.Email)))
				Expect(profile.User.Name).To(Equal(user.Name))
			})
		})

		Describe("Given no authorization", func() {
			It("should be rejected", func() {
				resp, err := users.GetUserWithoutAuth(ctx)
				Expect(err).NotTo(HaveOccurred())
				api.VerifyErrorResponse(resp, http.StatusUnauthorized, api.MessageUnauthorised)
				api.VerifySchema(ctx, validator, resp)
			})
		})
	})

	Context("When updating the profile", func() {
		Describe("Given a valid access token", func() {
			It("should update the email", func() {
				update := api.GenerateUpdatedEmail()

				resp, err := users.UpdateUser(ctx, session.AccessToken(), update)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				profile := api.Decode[api.UserResponse](resp)
				Expect(profile.Success).To(BeTrue())
				Expect(profile.User.Email).To(Equal(strings.ToLower(*update.Email)))
				Expect(profile.User.Name).To(Equal(user.Name))
			})

			// The service has been seen to refuse name and password
			// changes outright, both outcomes are accepted but each
			// must be well formed.
			It("should update the name", func() {
				update := api.GenerateUpdatedName()

				resp, err := users.UpdateUser(ctx, session.AccessToken(), update)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusForbidden), resp.String())
				api.VerifySchema(ctx, validator, resp)

				if resp.StatusCode == http.StatusForbidden {
					Expect(api.Decode[api.ErrorResponse](resp).Success).To(BeFalse())
					return
				}

				profile := api.Decode[api.UserResponse](resp)
				Expect(profile.User.Name).To(Equal(*update.Name))
			})

			It("should update the password", func() {
				update := api.GenerateUpdatedPassword()

				resp, err := users.UpdateUser(ctx, session.AccessToken(), update)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(BeElementOf(http.StatusOK, http.StatusForbidden), resp.String())
				api.VerifySchema(ctx, validator, resp)

				if resp.StatusCode == http.StatusForbidden {
					Expect(api.Decode[api.ErrorResponse](resp).Success).To(BeFalse())
					return
				}

				loginSucceeds(api.UserCredentials{Email: user.Email, Password: *update.Password})
			})

			It("should update every field at once", func() {
				update := api.GenerateUpdatedUserData()

				resp, err := users.UpdateUser(ctx, session.AccessToken(), update)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)
				api.VerifySchema(ctx, validator, resp)

				profile := api.Decode[api.UserResponse](resp)
				Expect(profile.User.Email).To(Equal(strings.ToLower(*update.Email)))
				Expect(profile.User.Name).To(Equal(*update.Name))

				loginSucceeds(api.UserCredentials{Email: *update.Email, Password: *update.Password})
			})
		})

		Describe("Given no authorization", func() {
			It("should be rejected", func() {
				resp, err := users.UpdateUserWithoutAuth(ctx, api.GenerateUpdatedUserData())
				Expect(err).NotTo(HaveOccurred())
				api.VerifyErrorResponse(resp, http.StatusUnauthorized, api.MessageUnauthorised)
				api.VerifySchema(ctx, validator, resp)
			})
		})

		Describe("Given an email owned by another user", func() {
			It("should be rejected", func() {
				other, _ := api.RegisterUserWithCleanup(ctx, users, api.GenerateRandomUser())

				resp, err := users.UpdateUser(ctx, session.AccessToken(), api.UserUpdate{Email: &other.User.Email})
				Expect(err).NotTo(HaveOccurred())
				api.VerifyErrorResponse(resp, http.StatusForbidden, api.MessageEmailTaken)
				api.VerifySchema(ctx, validator, resp)

				// Nothing changed.
				resp, err = users.GetUser(ctx, session.AccessToken())
				Expect(err).NotTo(HaveOccurred())
				Expect(api.Decode[api.UserResponse](resp).User.Email).To(Equal(strings.ToLower(user.Email)))
			})
		})
	})
})
