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

package openapi

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
)

var (
	// ErrUnknownOperation is raised when a response is checked for a method
	// and path the document does not describe.
	ErrUnknownOperation = errors.New("operation not described by the schema")

	//go:embed openapi.yaml
	spec []byte
)

// Load parses and validates the embedded document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validating schema: %w", err)
	}

	return doc, nil
}

// Validator checks HTTP responses against the embedded document.
type Validator struct {
	doc *openapi3.T
}

// NewValidator loads the schema and returns a validator for it.
func NewValidator(ctx context.Context) (*Validator, error) {
	doc, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	return &Validator{
		doc: doc,
	}, nil
}

// ValidateResponse checks a response to the given request.  The path is
// relative to the API base path e.g. "/auth/user".  Undocumented status
// codes are rejected.
func (v *Validator) ValidateResponse(ctx context.Context, req *http.Request, path string, status int, header http.Header, body []byte) error {
	pathItem := v.doc.Paths.Value(path)
	if pathItem == nil {
		return fmt.Errorf("%w: %s %s", ErrUnknownOperation, req.Method, path)
	}

	operation := pathItem.GetOperation(req.Method)
	if operation == nil {
		return fmt.Errorf("%w: %s %s", ErrUnknownOperation, req.Method, path)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: req,
			Route: &routers.Route{
				Spec:      v.doc,
				Path:      path,
				PathItem:  pathItem,
				Method:    req.Method,
				Operation: operation,
			},
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%s %s returned %d: %w", req.Method, path, status, err)
	}

	return nil
}
