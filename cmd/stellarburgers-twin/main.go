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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"github.com/stellarburgers/api-tests/pkg/constants"
	"github.com/stellarburgers/api-tests/pkg/server"

	"go.uber.org/zap"
)

func main() {
	var options server.Options

	options.AddFlags(pflag.CommandLine)

	pflag.Parse()

	logger, err := server.NewLogger(options.LogFormat, options.LogLevel)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	//nolint:errcheck
	defer logger.Sync()

	logger.Info("service starting", zap.String("application", constants.Application), zap.String("version", constants.Version), zap.String("revision", constants.Revision))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(&options, logger).Run(ctx); err != nil {
		logger.Error("server failed", zap.Error(err))
		os.Exit(1) //nolint:gocritic
	}
}
