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
	"context"
	"time"

	"github.com/onsi/ginkgo/v2"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Step describes one API call as seen by the harness.
type Step struct {
	// Name is the human readable description of what the call does.
	Name         string
	Method       string
	Path         string
	StatusCode   int
	Duration     time.Duration
	TraceParent  string
	RequestBody  []byte
	ResponseBody []byte
	// Err is set when the call did not produce a response.
	Err error
}

//go:generate mockgen -source=reporter.go -destination=mock/reporter.go -package=mock

// StepReporter receives every step the client performs.
type StepReporter interface {
	Step(ctx context.Context, step Step)
}

// NopReporter discards steps.
type NopReporter struct{}

func (NopReporter) Step(context.Context, Step) {}

// NewGinkgoLogger returns a console logger writing to GinkgoWriter, so
// output only surfaces for failed specs or in verbose runs.
func NewGinkgoLogger(debug bool) *zap.Logger {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339Nano)
	encoderConfig.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(ginkgo.GinkgoWriter), level)

	return zap.New(core)
}

// LogReporter records steps as structured log entries.
type LogReporter struct {
	logger       *zap.Logger
	logRequests  bool
	logResponses bool
}

func NewLogReporter(logger *zap.Logger, config *TestConfig) *LogReporter {
	return &LogReporter{
		logger:       logger,
		logRequests:  config.LogRequests,
		logResponses: config.LogResponses,
	}
}

func (r *LogReporter) Step(_ context.Context, step Step) {
	fields := []zap.Field{
		zap.String("step", step.Name),
		zap.String("method", step.Method),
		zap.String("path", step.Path),
		zap.Duration("duration", step.Duration),
		zap.String("traceparent", step.TraceParent),
	}

	if step.Err != nil {
		// Use the trace ID to search the service logs for this request.
		fields = append(fields, zap.String("trace_id", extractTraceID(step.TraceParent)), zap.Error(step.Err))

		r.logger.Error("request failed", fields...)

		return
	}

	fields = append(fields, zap.Int("status", step.StatusCode))

	if r.logRequests && len(step.RequestBody) > 0 {
		fields = append(fields, zap.ByteString("request", step.RequestBody))
	}

	if r.logResponses && len(step.ResponseBody) > 0 {
		fields = append(fields, zap.ByteString("response", step.ResponseBody))
	}

	r.logger.Info("step", fields...)
}
