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

// Package api provides end to end test utilities for the Stellar Burgers API.
//
// # Separate Client Implementation
//
// This package maintains its own small HTTP client rather than a generated
// one.  Any legitimate change to the service contract must have a
// compensating change here, which keeps API evolution explicit and
// reviewable.
//
// The client is test specific:
//   - W3C trace context propagation for request correlation
//   - structured step logging through a pluggable StepReporter
//   - per scenario credential state held in a Session
//   - direct access to HTTP status codes and response bodies
//
// HTTP errors are data, not Go errors.  Request.Do only fails when no
// response was received, scenarios assert on the status themselves.
//
// # Backend Double
//
// When STELLAR_BASE_URL is unset the suites start the in-memory double
// from pkg/server, so they run without network access.
package api
