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

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/stellarburgers/api-tests/pkg/server/handler"
	"github.com/stellarburgers/api-tests/pkg/server/store"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Server is an in-memory stand in for the Stellar Burgers service.
type Server struct {
	options *Options
	logger  *zap.Logger
	store   *store.MemoryStore
	handler http.Handler
}

// New wires the store, token issuer and router together.
func New(options *Options, logger *zap.Logger) *Server {
	now := options.now()

	s := store.New(
		store.WithClock(now),
		store.WithBcryptCost(options.BcryptCost),
		store.WithFirstOrderNumber(options.FirstOrderNumber),
	)

	tokens := handler.NewTokenIssuer(options.Handler.JWTSecret, options.Handler.AccessTokenTTL, now)

	return &Server{
		options: options,
		logger:  logger,
		store:   s,
		handler: handler.NewRouter(handler.New(s, tokens, logger)),
	}
}

// Handler returns the root HTTP handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Store exposes the backing state.
func (s *Server) Store() *store.MemoryStore {
	return s.store
}

// Run serves until the context is cancelled, then drains in flight requests.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.options.ListenAddress,
		ReadTimeout:       s.options.ReadTimeout,
		ReadHeaderTimeout: s.options.ReadHeaderTimeout,
		WriteTimeout:      s.options.WriteTimeout,
		Handler:           s.handler,
	}

	errs := make(chan error, 1)

	go func() {
		s.logger.Info("starting server", zap.String("addr", server.Addr))

		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.options.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// NewLogger builds a production JSON logger, or a development console
// one when asked.
func NewLogger(format, level string) (*zap.Logger, error) {
	l := zapcore.InfoLevel

	if err := l.Set(strings.ToLower(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "ts"
	config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)
	config.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	if format == "console" {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.Level = zap.NewAtomicLevelAt(l)

	return config.Build()
}
