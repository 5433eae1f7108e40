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
	"sync"
)

// Session holds the credentials of the user a scenario is acting as.
// Each scenario owns its own session, so parallel specs never observe
// one another's tokens.
type Session struct {
	lock         sync.RWMutex
	accessToken  string
	refreshToken string
}

func NewSession() *Session {
	return &Session{}
}

// Set replaces both tokens.
func (s *Session) Set(accessToken, refreshToken string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.accessToken = accessToken
	s.refreshToken = refreshToken
}

// SetAccessToken replaces the access token, leaving the refresh token alone.
func (s *Session) SetAccessToken(accessToken string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.accessToken = accessToken
}

// Store remembers the tokens from a registration or login.
func (s *Session) Store(auth *AuthResponse) {
	if auth == nil {
		return
	}

	s.Set(auth.AccessToken, auth.RefreshToken)
}

func (s *Session) AccessToken() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.accessToken
}

func (s *Session) RefreshToken() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.refreshToken
}

// Authenticated reports whether an access token is held.
func (s *Session) Authenticated() bool {
	return s.AccessToken() != ""
}

func (s *Session) Clear() {
	s.Set("", "")
}
