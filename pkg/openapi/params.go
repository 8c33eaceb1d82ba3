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
	"reflect"
	"strings"

	"github.com/oapi-codegen/runtime"
)

// resolvePath substitutes every placeholder of template with the percent-encoded value
// of the matching path parameter
func resolvePath(template string, params map[string]any) (string, error) {
	path := template

	for name, value := range params {
		token := "{" + name + "}"
		if !strings.Contains(template, token) {
			return "", fmt.Errorf("path parameter %s is not part of %s", name, template)
		}

		value, ok := indirect(value)
		if !ok {
			return "", fmt.Errorf("path parameter %s cannot be empty", name)
		}

		encoded, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, value)
		if err != nil {
			return "", fmt.Errorf("failed to encode path parameter %s: %w", name, err)
		}
		if encoded == "" {
			return "", fmt.Errorf("path parameter %s cannot be empty", name)
		}

		path = strings.ReplaceAll(path, token, encoded)
	}

	// encoded values never contain braces, so anything left is an unbound placeholder
	if start := strings.IndexByte(path, '{'); start >= 0 {
		if end := strings.IndexByte(path[start:], '}'); end > 0 {
			return "", fmt.Errorf("path parameter %s is missing", path[start+1:start+end])
		}
	}

	return path, nil
}

// encodeQuery renders params as a query string in slice order, skipping absent values
func encodeQuery(params []QueryParam) (string, error) {
	parts := make([]string, 0, len(params))

	for _, p := range params {
		value, ok := indirect(p.Value)
		if !ok {
			continue
		}

		fragment, err := runtime.StyleParamWithLocation("form", true, p.Name, runtime.ParamLocationQuery, value)
		if err != nil {
			return "", fmt.Errorf("failed to encode query parameter %s: %w", p.Name, err)
		}

		parts = append(parts, fragment)
	}

	return strings.Join(parts, "&"), nil
}

// indirect unwraps pointers and reports false for nil
func indirect(value any) (any, bool) {
	if value == nil {
		return nil, false
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}

	return v.Interface(), true
}
