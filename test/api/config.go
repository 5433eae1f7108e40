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
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/stellarburgers/api-tests/pkg/constants"
)

var (
	ErrInvalidBaseURL  = errors.New("invalid base URL")
	ErrInvalidBasePath = errors.New("base path must start with /")
)

const (
	defaultRequestTimeout       = 30 * time.Second
	defaultOrderIngredientCount = 3
)

type TestConfig struct {
	// BaseURL is the service origin.  When empty the suites boot an
	// in-process backend double and point at that instead.
	BaseURL              string
	BasePath             string
	RequestTimeout       time.Duration
	OrderIngredientCount int
	ValidateSchema       bool
	DebugLogging         bool
	LogRequests          bool
	LogResponses         bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a value is present but unusable.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:              strings.TrimSuffix(os.Getenv("STELLAR_BASE_URL"), "/"),
		BasePath:             getStringWithDefault("STELLAR_BASE_PATH", constants.BasePath),
		RequestTimeout:       getDurationWithDefault("REQUEST_TIMEOUT", defaultRequestTimeout),
		OrderIngredientCount: getIntWithDefault("ORDER_INGREDIENT_COUNT", defaultOrderIngredientCount),
		ValidateSchema:       getBoolWithDefault("VALIDATE_SCHEMA", true),
		DebugLogging:         getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:          getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:         getBoolWithDefault("LOG_RESPONSES", false),
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// UseTwin reports whether no external service was configured.
func (c *TestConfig) UseTwin() bool {
	return c.BaseURL == ""
}

func (c *TestConfig) validate() error {
	if !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidBasePath, c.BasePath)
	}

	c.BasePath = strings.TrimSuffix(c.BasePath, "/")

	if c.UseTwin() {
		return nil
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.BaseURL)
	}

	return nil
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil || duration <= 0 {
		return defaultValue
	}

	return duration
}

func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	i, err := strconv.Atoi(value)
	if err != nil || i <= 0 {
		return defaultValue
	}

	return i
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		"../.env",       // From test/api
		"../../.env",    // From test/api/suites
		"../../../.env", // From test/contracts/consumer/stellarburgers
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Load does not override variables that are already set.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
