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
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/stellarburgers/api-tests/test/api"
)

var _ = Describe("Session Isolation", func() {
	const workers = 4

	Context("When several users act concurrently", func() {
		Describe("Given one session per user", func() {
			It("should only ever see its own profile", func() {
				registrations := make([]api.UserRegistration, workers)
				sessions := make([]*api.Session, workers)

				// Teardown must be registered from the test goroutine.
				for i := range workers {
					registrations[i] = api.GenerateRandomUser()
					sessions[i] = api.NewSession()

					api.DeferSessionTeardown(ctx, users, sessions[i])
				}

				var wg sync.WaitGroup

				for i := range workers {
					wg.Add(1)

					go func() {
						defer wg.Done()
						defer GinkgoRecover()

						api.RegisterUser(ctx, users, sessions[i], registrations[i])

						resp, err := users.GetUser(ctx, sessions[i].AccessToken())
						Expect(err).NotTo(HaveOccurred())
						api.ExpectStatus(resp, http.StatusOK)

						profile := api.Decode[api.UserResponse](resp)
						Expect(profile.User.Email).To(Equal(registrations[i].Email))
						Expect(profile.User.Name).To(Equal(registrations[i].Name))
					}()
				}

				wg.Wait()

				tokens := map[string]struct{}{}

				for _, s := range sessions {
					Expect(s.Authenticated()).To(BeTrue())

					tokens[s.AccessToken()] = struct{}{}
				}

				Expect(tokens).To(HaveLen(workers))
			})
		})
	})
})
