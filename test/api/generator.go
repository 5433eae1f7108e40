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

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/rand"
	"k8s.io/utils/ptr"
)

const (
	// InvalidIngredientID is well formed but matches nothing in the catalog.
	InvalidIngredientID = "60d3b41abdacab0026a733c0"

	emailPrefix      = "random-"
	emailDomain      = "@test.com"
	emailLocalLength = 10
	passwordLength   = 12
	nameLength       = 8
	namePrefix       = "User "

	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
)

func randomFrom(alphabet string, n int) string {
	var b strings.Builder

	b.Grow(n)

	for range n {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}

	return b.String()
}

// GenerateRandomEmail returns a unique, lower case address.
func GenerateRandomEmail() string {
	return emailPrefix + rand.String(emailLocalLength) + emailDomain
}

// GenerateMixedCaseEmail returns a unique address with upper case letters
// in it, the service stores it lower cased.
func GenerateMixedCaseEmail() string {
	return "Random-" + strings.ToUpper(rand.String(emailLocalLength)) + "@Test.COM"
}

// GenerateRandomPassword returns twelve mixed case alphanumerics.
func GenerateRandomPassword() string {
	return randomFrom(lowerLetters+upperLetters+digits, passwordLength)
}

// GenerateRandomName returns "User " followed by a capitalised word.
func GenerateRandomName() string {
	return namePrefix + randomFrom(upperLetters, 1) + randomFrom(lowerLetters, nameLength-1)
}

func GenerateRandomUser() UserRegistration {
	return UserRegistration{
		Email:    GenerateRandomEmail(),
		Password: GenerateRandomPassword(),
		Name:     GenerateRandomName(),
	}
}

// ToCredentials derives login credentials from a registration.
func ToCredentials(user UserRegistration) UserCredentials {
	return UserCredentials{
		Email:    user.Email,
		Password: user.Password,
	}
}

// GenerateUpdatedUserData changes every field.
func GenerateUpdatedUserData() UserUpdate {
	return UserUpdate{
		Email:    ptr.To(GenerateRandomEmail()),
		Password: ptr.To(GenerateRandomPassword()),
		Name:     ptr.To(GenerateRandomName()),
	}
}

func GenerateUpdatedEmail() UserUpdate {
	return UserUpdate{Email: ptr.To(GenerateRandomEmail())}
}

func GenerateUpdatedName() UserUpdate {
	return UserUpdate{Name: ptr.To(GenerateRandomName())}
}

func GenerateUpdatedPassword() UserUpdate {
	return UserUpdate{Password: ptr.To(GenerateRandomPassword())}
}
