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
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

const contentTypeJSON = "application/json"

// EncodeJSON serializes a request body
func EncodeJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return data, nil
}

// DecodeJSON parses a response body into a new T.
// A string target also accepts a plain-text body, which is taken verbatim.
// An empty or null body is an error since there is no T to return.
func DecodeJSON[T any](data []byte) (*T, error) {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return nil, errors.New("empty response body")
	case bytes.Equal(trimmed, []byte("null")):
		return nil, errors.New("null response body")
	}

	out := new(T)

	if s, ok := any(out).(*string); ok {
		if trimmed[0] != '"' {
			*s = string(data)
			return out, nil
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return nil, err
	}

	return out, nil
}
