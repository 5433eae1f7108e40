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

package handler

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// bearerPrefix is part of the access token itself, the service hands
	// tokens out with it already attached.
	bearerPrefix = "Bearer "

	issuer = "stellarburgers-twin"
)

var (
	ErrTokenExpired   = errors.New("jwt expired")
	ErrTokenSignature = errors.New("invalid signature")
	ErrTokenMalformed = errors.New("jwt malformed")
)

// TokenIssuer mints and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration, now func() time.Time) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

// Issue returns a "Bearer " prefixed access token whose subject is the user ID.
func (t *TokenIssuer) Issue(userID string) (string, error) {
	now := t.now()

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return bearerPrefix + signed, nil
}

// Verify checks an Authorization header value and returns the user ID.
func (t *TokenIssuer) Verify(header string) (string, error) {
	raw, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok || raw == "" {
		return "", ErrTokenMalformed
	}

	claims := &jwt.RegisteredClaims{}

	keyFunc := func(*jwt.Token) (any, error) {
		return t.secret, nil
	}

	_, err := jwt.ParseWithClaims(raw, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.now),
	)

	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", ErrTokenSignature
	default:
		return "", fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}

	if claims.Subject == "" {
		return "", ErrTokenMalformed
	}

	return claims.Subject, nil
}
