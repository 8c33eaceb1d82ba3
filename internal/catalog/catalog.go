/*
Copyright 2025 Piotr Janik.

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

// Package catalog holds the API description of the petstore User resource and checks
// request descriptors against it.
package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/invopop/yaml"

	"github.com/cogniteo/petstore-users/pkg/openapi"
)

//go:embed user.yaml
var userDocument []byte

// Operation is an endpoint as the API document declares it
type Operation struct {
	ID          string   `json:"id"`
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Summary     string   `json:"summary,omitempty"`
	PathParams  []string `json:"pathParams,omitempty"`
	QueryParams []string `json:"queryParams,omitempty"`
	HasBody     bool     `json:"hasBody"`
}

// Catalog indexes the operations of an API document by operationId
type Catalog struct {
	doc        *openapi3.T
	operations map[string]Operation
}

// Load parses the embedded User resource document
func Load(ctx context.Context) (*Catalog, error) {
	return Parse(ctx, userDocument)
}

// Parse reads a Swagger 2.0 document, converts it and validates the result
func Parse(ctx context.Context, data []byte) (*Catalog, error) {
	doc2 := new(openapi2.T)
	if err := yaml.Unmarshal(data, doc2); err != nil {
		return nil, fmt.Errorf("failed to parse API document: %w", err)
	}

	doc, err := openapi2conv.ToV3(doc2)
	if err != nil {
		return nil, fmt.Errorf("failed to convert API document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid API document: %w", err)
	}

	return &Catalog{
		doc:        doc,
		operations: getOperations(doc),
	}, nil
}

// ServerURL returns the first server the document declares
func (c *Catalog) ServerURL() string {
	if len(c.doc.Servers) == 0 {
		return ""
	}
	return c.doc.Servers[0].URL
}

// Operations returns every operation sorted by ID
func (c *Catalog) Operations() []Operation {
	result := make([]Operation, 0, len(c.operations))
	for _, o := range c.operations {
		result = append(result, o)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Operation looks an operation up by ID
func (c *Catalog) Operation(id string) (Operation, bool) {
	o, ok := c.operations[id]
	return o, ok
}

// Check reports whether the descriptor matches the documented operation with the same ID
func (c *Catalog) Check(op openapi.Operation) error {
	o, ok := c.operations[op.ID]
	if !ok {
		return fmt.Errorf("operation %q is not documented", op.ID)
	}

	if string(op.Method) != o.Method {
		return fmt.Errorf("operation %q: method %s, documented %s", op.ID, op.Method, o.Method)
	}
	if op.PathTemplate != o.Path {
		return fmt.Errorf("operation %q: path %s, documented %s", op.ID, op.PathTemplate, o.Path)
	}
	if op.HasBody != o.HasBody {
		return fmt.Errorf("operation %q: body %t, documented %t", op.ID, op.HasBody, o.HasBody)
	}

	var pathParams []string
	for name := range op.PathParams {
		pathParams = append(pathParams, name)
	}
	sort.Strings(pathParams)
	if !slices.Equal(pathParams, o.PathParams) {
		return fmt.Errorf("operation %q: path params %v, documented %v", op.ID, pathParams, o.PathParams)
	}

	var queryParams []string
	for _, q := range op.QueryParams {
		queryParams = append(queryParams, q.Name)
	}
	if !slices.Equal(queryParams, o.QueryParams) {
		return fmt.Errorf("operation %q: query params %v, documented %v", op.ID, queryParams, o.QueryParams)
	}

	return nil
}

func getOperations(doc *openapi3.T) map[string]Operation {
	result := map[string]Operation{}

	for p, path := range doc.Paths.Map() {
		for m, o := range path.Operations() {
			if o.OperationID == "" {
				continue
			}

			op := Operation{
				ID:      o.OperationID,
				Method:  strings.ToUpper(m),
				Path:    p,
				Summary: o.Summary,
				HasBody: o.RequestBody != nil,
			}

			params := append(openapi3.Parameters{}, path.Parameters...)
			params = append(params, o.Parameters...)

			for _, param := range params {
				if param.Value == nil {
					continue
				}

				switch {
				case strings.EqualFold(param.Value.In, openapi3.ParameterInPath):
					op.PathParams = append(op.PathParams, param.Value.Name)
				case strings.EqualFold(param.Value.In, openapi3.ParameterInQuery):
					op.QueryParams = append(op.QueryParams, param.Value.Name)
				}
			}

			sort.Strings(op.PathParams)
			result[op.ID] = op
		}
	}

	return result
}
