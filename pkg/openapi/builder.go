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
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ResponseKind says what a successful response turns into
type ResponseKind int

const (
	// Empty discards the response body and yields Void
	Empty ResponseKind = iota
	// Decodable parses the response body into the builder's type
	Decodable
)

// Void is the result of operations that return no content
type Void struct{}

// RequestBuilder binds an operation to the way its response is consumed
type RequestBuilder[T any] struct {
	operation Operation
	kind      ResponseKind
	decode    func([]byte) (*T, error)
}

// NewDecodableBuilder returns a builder whose successful responses are decoded as T
func NewDecodableBuilder[T any](op Operation) *RequestBuilder[T] {
	return &RequestBuilder[T]{
		operation: op,
		kind:      Decodable,
		decode:    DecodeJSON[T],
	}
}

// NewNonDecodableBuilder returns a builder that ignores response bodies
func NewNonDecodableBuilder(op Operation) *RequestBuilder[Void] {
	return &RequestBuilder[Void]{
		operation: op,
		kind:      Empty,
		decode: func([]byte) (*Void, error) {
			return &Void{}, nil
		},
	}
}

func (b *RequestBuilder[T]) Operation() Operation {
	return b.operation
}

func (b *RequestBuilder[T]) Kind() ResponseKind {
	return b.kind
}

// Build resolves the operation against cfg into a Request
func (b *RequestBuilder[T]) Build(cfg *Configuration) (*Request, error) {
	op := b.operation

	if err := op.validate(); err != nil {
		return nil, err
	}

	path, err := resolvePath(op.PathTemplate, op.PathParams)
	if err != nil {
		return nil, err
	}

	query, err := encodeQuery(op.QueryParams)
	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(cfg.BasePath, "/") + path
	if query != "" {
		url += "?" + query
	}

	header := http.Header{}
	for name, value := range cfg.DefaultHeaders {
		header.Set(name, value)
	}
	if cfg.UserAgent != "" {
		header.Set("User-Agent", cfg.UserAgent)
	}
	if b.kind == Decodable {
		header.Set("Accept", contentTypeJSON)
	}

	var body []byte
	if op.HasBody {
		body, err = EncodeJSON(op.Body)
		if err != nil {
			return nil, err
		}
		header.Set("Content-Type", contentTypeJSON)
	}

	return &Request{
		operation: op.ID,
		method:    op.Method,
		url:       url,
		header:    header,
		body:      body,
	}, nil
}

// Execute sends the request on c and waits for the result
func (b *RequestBuilder[T]) Execute(ctx context.Context, c *Client) (*Response[T], error) {
	return Execute(ctx, c, b)
}

func (b *RequestBuilder[T]) String() string {
	return fmt.Sprintf("%s %s", b.operation.Method, b.operation.PathTemplate)
}
