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

package openapi

import (
	"fmt"
	"net/http"
)

// Method is an HTTP verb an operation can be issued with
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodPost   Method = http.MethodPost
	MethodPut    Method = http.MethodPut
	MethodDelete Method = http.MethodDelete
)

// QueryParam is one name/value pair of a query string. A nil Value, or a nil pointer,
// marks the parameter absent and it is left out of the URL.
type QueryParam struct {
	Name  string
	Value any
}

// Operation is the static description of one API endpoint plus the arguments of a
// single call
type Operation struct {
	// ID is the operationId of the endpoint
	ID string

	Method Method

	// PathTemplate is the endpoint path with {name} placeholders
	PathTemplate string

	PathParams map[string]any

	// QueryParams are encoded in slice order
	QueryParams []QueryParam

	Body    any
	HasBody bool
}

func (o Operation) validate() error {
	switch o.Method {
	case MethodGet, MethodPost, MethodPut, MethodDelete:
	default:
		return fmt.Errorf("unsupported method %q", o.Method)
	}

	if o.PathTemplate == "" || o.PathTemplate[0] != '/' {
		return fmt.Errorf("path template %q must start with /", o.PathTemplate)
	}

	return nil
}
