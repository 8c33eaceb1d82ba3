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
	"bytes"
	"context"
	"io"
	"net/http"
)

// Request is a fully resolved call: the URL has its placeholders substituted and its query
// string appended, and the body is already serialized. It is not modified after Build.
type Request struct {
	operation string
	method    Method
	url       string
	header    http.Header
	body      []byte
}

func (r *Request) Method() Method {
	return r.method
}

func (r *Request) URL() string {
	return r.url
}

// Header returns a copy of the request headers
func (r *Request) Header() http.Header {
	return r.header.Clone()
}

// Body returns a copy of the serialized body, or nil when the operation sends none
func (r *Request) Body() []byte {
	if r.body == nil {
		return nil
	}
	return bytes.Clone(r.body)
}

func (r *Request) newHTTPRequest(ctx context.Context) (*http.Request, error) {
	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, string(r.method), r.url, body)
	if err != nil {
		return nil, err
	}

	req.Header = r.header.Clone()
	return req, nil
}

// Response is a completed call with its body decoded into T
type Response[T any] struct {
	StatusCode int
	Header     http.Header
	RawBody    []byte

	Body *T
}
