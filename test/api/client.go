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

//nolint:revive // naming conventions acceptable in test code
package api

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is the single HTTP client shared by every resource client.
type Client struct {
	baseURL   string
	client    *http.Client
	reporter  StepReporter
	endpoints *Endpoints
}

// NewClient creates a client for the service rooted at baseURL, using the
// base path and timeout from config.
func NewClient(config *TestConfig, baseURL string, reporter StepReporter) *Client {
	if reporter == nil {
		reporter = NopReporter{}
	}

	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/") + config.BasePath,
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		reporter:  reporter,
		endpoints: NewEndpoints(),
	}
}

// NewClientWithConfig creates a client for the configured base URL.
func NewClientWithConfig(config *TestConfig, reporter StepReporter) *Client {
	return NewClient(config, config.BaseURL, reporter)
}

func (c *Client) Endpoints() *Endpoints {
	return c.endpoints
}

// Plain starts a request without credentials.
func (c *Client) Plain() *Request {
	return &Request{client: c}
}

// Authorized starts a request carrying the token as the Authorization
// header.  The token is sent as is, access tokens already carry their
// scheme.
func (c *Client) Authorized(token string) *Request {
	return &Request{client: c, token: token}
}

// Request is a single call being built.
type Request struct {
	client  *Client
	token   string
	step    string
	body    any
	hasBody bool
}

// Step names the request for reporting.
func (r *Request) Step(name string) *Request {
	r.step = name
	return r
}

// WithBody sets a value to be sent as JSON.
func (r *Request) WithBody(v any) *Request {
	r.body = v
	r.hasBody = true

	return r
}

// Response is everything observed about a completed call.  Non-2xx
// responses are not errors, callers assert on them.
type Response struct {
	StatusCode  int
	Header      http.Header
	Body        []byte
	Method      string
	Path        string
	TraceParent string
	// Request is what was sent, with its body already consumed.
	Request *http.Request
}

// TraceID is the W3C trace ID the request was sent with.
func (r *Response) TraceID() string {
	return extractTraceID(r.TraceParent)
}

// Success reports a 2xx status.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the body.  Unknown fields are ignored.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding %s %s response (status %d, trace ID %s): %w", r.Method, r.Path, r.StatusCode, r.TraceID(), err)
	}

	return nil
}

func (r *Response) String() string {
	return fmt.Sprintf("%s %s -> %d %s (trace ID: %s)", r.Method, r.Path, r.StatusCode, string(r.Body), r.TraceID())
}

// generateTraceID creates a new W3C trace ID.
// we are using this to create a new trace ID for each request so if an error occurs we can find the request in the logs.
func generateTraceID() string {
	bytes := make([]byte, 16)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// generateSpanID creates a new W3C span ID.
func generateSpanID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", generateTraceID(), generateSpanID())
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// Do sends the request.  Errors are only returned when no response was
// received.
func (r *Request) Do(ctx context.Context, method, path string) (*Response, error) {
	c := r.client

	var (
		body    io.Reader
		payload []byte
	)

	if r.hasBody {
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s %s body: %w", method, path, err)
		}

		payload = data
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set(HeaderTraceparent, traceParent)
	req.Header.Set(HeaderTracestate, "test-automation=ginkgo")
	req.Header.Set(HeaderContentType, ContentTypeJSON)

	if r.token != "" {
		req.Header.Set(HeaderAuthorization, r.token)
	}

	step := Step{
		Name:        r.step,
		Method:      method,
		Path:        path,
		TraceParent: traceParent,
		RequestBody: payload,
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	step.Duration = time.Since(start)

	if err != nil {
		step.Err = err
		c.reporter.Step(ctx, step)

		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		step.Err = err
		c.reporter.Step(ctx, step)

		return nil, fmt.Errorf("reading response body: %w", err)
	}

	step.StatusCode = resp.StatusCode
	step.ResponseBody = respBody
	c.reporter.Step(ctx, step)

	return &Response{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        respBody,
		Method:      method,
		Path:        path,
		TraceParent: traceParent,
		Request:     req,
	}, nil
}
