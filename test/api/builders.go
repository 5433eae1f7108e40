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

// UserBuilder builds registration payloads for testing.
type UserBuilder struct {
	user UserRegistration
}

// NewUser creates a builder seeded with a random, complete user.
func NewUser() *UserBuilder {
	return &UserBuilder{
		user: GenerateRandomUser(),
	}
}

// WithEmail sets the email, pass an empty string to omit it.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

// WithPassword sets the password, pass an empty string to omit it.
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.user.Password = password
	return b
}

// WithName sets the name, pass an empty string to omit it.
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithoutEmail() *UserBuilder {
	return b.WithEmail("")
}

func (b *UserBuilder) WithoutPassword() *UserBuilder {
	return b.WithPassword("")
}

func (b *UserBuilder) WithoutName() *UserBuilder {
	return b.WithName("")
}

// Build returns the completed registration payload.
func (b *UserBuilder) Build() UserRegistration {
	return b.user
}

// Credentials returns the login credentials matching the payload.
func (b *UserBuilder) Credentials() UserCredentials {
	return ToCredentials(b.user)
}
