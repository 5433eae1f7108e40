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

// Error messages the service is known to return.
const (
	MessageUserExists          = "User already exists"
	MessageRequiredFields      = "Email, password and name are required fields"
	MessageIncorrectLogin      = "email or password are incorrect"
	MessageUnauthorised        = "You should be authorised"
	MessageEmailTaken          = "User with such email already exists"
	MessageIngredientsRequired = "Ingredient ids must be provided"
)
