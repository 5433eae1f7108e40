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
	"time"

	"github.com/spf13/pflag"
	"github.com/stellarburgers/api-tests/pkg/server/handler"
	"github.com/stellarburgers/api-tests/pkg/server/store"

	"golang.org/x/crypto/bcrypt"
)

// Options configures the backend double.
type Options struct {
	// ListenAddress tells the server what to listen on.
	ListenAddress string

	// ReadTimeout is how long to wait for a request to be read.
	ReadTimeout time.Duration

	// ReadHeaderTimeout is how long to wait for the request headers.
	ReadHeaderTimeout time.Duration

	// WriteTimeout is how long a handler may take to respond.
	WriteTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration

	// LogFormat is either "json" or "console".
	LogFormat string

	// LogLevel is any zap level name.
	LogLevel string

	// FirstOrderNumber seeds global order numbering.
	FirstOrderNumber int

	// BcryptCost is the password hashing cost.
	BcryptCost int

	// Handler options.
	Handler handler.Options

	// Now is the clock, tests may override it.
	Now func() time.Time
}

// NewOptions returns options with their defaults set, suitable for
// running in-process without parsing flags.
func NewOptions() *Options {
	o := &Options{}

	o.AddFlags(pflag.NewFlagSet("twin", pflag.ContinueOnError))

	return o
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "server-listen-address", ":6080", "API listener address.")
	f.DurationVar(&o.ReadTimeout, "server-read-timeout", time.Second, "How long to wait for the client to send the request body.")
	f.DurationVar(&o.ReadHeaderTimeout, "server-read-header-timeout", time.Second, "How long to wait for the client to send headers.")
	f.DurationVar(&o.WriteTimeout, "server-write-timeout", 10*time.Second, "How long to wait for the API to respond to the client.")
	f.DurationVar(&o.ShutdownTimeout, "server-shutdown-timeout", 10*time.Second, "How long to wait for in flight requests on shutdown.")
	f.StringVar(&o.LogFormat, "log-format", "json", "Log encoding, json or console.")
	f.StringVar(&o.LogLevel, "log-level", "info", "Minimum log level.")
	f.IntVar(&o.FirstOrderNumber, "first-order-number", store.DefaultFirstOrderNumber, "Number given to the first order.")
	f.IntVar(&o.BcryptCost, "bcrypt-cost", bcrypt.MinCost, "Password hashing cost.")

	o.Handler.AddFlags(f)
}

func (o *Options) now() func() time.Time {
	if o.Now != nil {
		return o.Now
	}

	return time.Now
}
