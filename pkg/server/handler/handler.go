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

//nolint:revive
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/pflag"
	"github.com/stellarburgers/api-tests/pkg/constants"
	"github.com/stellarburgers/api-tests/pkg/server/store"

	"go.uber.org/zap"
)

// Options allows behaviour to be defined on the CLI.
type Options struct {
	// JWTSecret signs access tokens.
	JWTSecret string

	// AccessTokenTTL is how long an access token remains valid.
	AccessTokenTTL time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.JWTSecret, "jwt-secret", "stellar-burgers-twin", "Secret used to sign access tokens")
	f.DurationVar(&o.AccessTokenTTL, "access-token-ttl", 20*time.Minute, "Lifetime of issued access tokens")
}

type Handler struct {
	// store holds users, tokens and orders.
	store *store.MemoryStore

	// tokens mints and checks access tokens.
	tokens *TokenIssuer

	// logger records requests and failures.
	logger *zap.Logger
}

func New(s *store.MemoryStore, tokens *TokenIssuer, logger *zap.Logger) *Handler {
	return &Handler{
		store:  s,
		tokens: tokens,
		logger: logger,
	}
}

// Routes mounts the service under its base path.
func (h *Handler) Routes(r chi.Router) {
	r.Route(constants.BasePath, func(r chi.Router) {
		r.Get("/ingredients", h.GetIngredients)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.PostRegister)
			r.Post("/login", h.PostLogin)
			r.Post("/logout", h.PostLogout)

			r.With(h.requireUser).Get("/user", h.GetUser)
			r.With(h.requireUser).Patch("/user", h.PatchUser)
			r.With(h.requireUser).Delete("/user", h.DeleteUser)
		})

		r.Route("/orders", func(r chi.Router) {
			r.With(h.optionalUser).Post("/", h.PostOrder)
			r.With(h.requireUser).Get("/", h.GetOrders)
			r.Get("/all", h.GetAllOrders)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, MessageNotFound)
	})
}

// NewRouter returns a router with the common middleware stack and the
// service routes mounted.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.StripSlashes)
	r.Use(h.requestLog)
	r.Use(chimw.Recoverer)

	h.Routes(r)

	return r
}

func requestFields(r *http.Request, err error) []zap.Field {
	return []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("request_id", chimw.GetReqID(r.Context())),
		zap.String("traceparent", r.Header.Get("Traceparent")),
		zap.Error(err),
	}
}

func (h *Handler) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", chimw.GetReqID(r.Context())),
			zap.String("traceparent", r.Header.Get("Traceparent")),
		)
	})
}

type userIDKey struct{}

func withUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// userIDFromContext returns the authenticated user, empty when anonymous.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)

	return id
}

// authenticate resolves the Authorization header.  It reports false after
// writing an error response.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (*http.Request, bool) {
	id, err := h.tokens.Verify(r.Header.Get("Authorization"))
	if err != nil {
		// Sentinel messages are surfaced verbatim, wrapped parse
		// failures collapse onto the generic one.
		message := ErrTokenMalformed.Error()

		if errors.Is(err, ErrTokenExpired) || errors.Is(err, ErrTokenSignature) {
			message = err.Error()
		}

		writeError(w, http.StatusForbidden, message)

		return nil, false
	}

	return r.WithContext(withUserID(r.Context(), id)), true
}

func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeError(w, http.StatusUnauthorized, MessageUnauthorised)
			return
		}

		r, ok := h.authenticate(w, r)
		if !ok {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// optionalUser authenticates only when credentials are offered.
func (h *Handler) optionalUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		r, ok := h.authenticate(w, r)
		if !ok {
			return
		}

		next.ServeHTTP(w, r)
	})
}
