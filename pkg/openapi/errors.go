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
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies why an invocation failed
type ErrorKind int

const (
	// KindBuild means the request could not be constructed
	KindBuild ErrorKind = iota
	// KindTransport means the request never produced a response
	KindTransport
	// KindStatus means the server answered with a non-2xx status
	KindStatus
	// KindDecode means the response body did not match the expected shape
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindBuild:
		return "build"
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the single error value every failed invocation reports
type Error struct {
	Kind      ErrorKind
	Operation string

	// StatusCode and Body are set when a response was received
	StatusCode int
	Body       []byte

	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindStatus:
		return fmt.Sprintf("%s: unexpected status %d %s", e.Operation, e.StatusCode, http.StatusText(e.StatusCode))
	case e.Err != nil:
		return fmt.Sprintf("%s: %s error: %v", e.Operation, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s error", e.Operation, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 answer
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindStatus && apiErr.StatusCode == http.StatusNotFound
}
