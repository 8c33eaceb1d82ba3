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
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/time/rate"
)

// DefaultBasePath is the server the petstore API is published on
const DefaultBasePath = "http://petstore.swagger.io:80/v2"

// HTTPRequestDoer performs HTTP requests.
// The standard http.Client implements this interface.
type HTTPRequestDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Configuration holds everything a Client needs to turn an operation into a request
// and put it on the wire
type Configuration struct {
	// BasePath is prepended to every operation path
	BasePath string

	// DefaultHeaders are sent with every request
	DefaultHeaders map[string]string

	UserAgent string

	HTTPClient HTTPRequestDoer

	// Timeout bounds a whole request when HTTPClient is an *http.Client. Other doers
	// are left alone and only see the context deadline.
	Timeout time.Duration

	// RateLimiter, if set, is waited on before each request is dispatched
	RateLimiter *rate.Limiter

	Logger logr.Logger
}

// Option mutates a Configuration during client construction
type Option func(*Configuration) error

// NewConfiguration returns a Configuration with defaults applied and options run in order
func NewConfiguration(opts ...Option) (*Configuration, error) {
	cfg := &Configuration{
		BasePath:       DefaultBasePath,
		DefaultHeaders: map[string]string{},
		UserAgent:      "petstore-users/go",
		Logger:         logr.Discard(),
	}

	for _, o := range opts {
		if err := o(cfg); err != nil {
			return nil, err
		}
	}

	switch hc := cfg.HTTPClient.(type) {
	case nil:
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	case *http.Client:
		if cfg.Timeout > 0 {
			withTimeout := *hc
			withTimeout.Timeout = cfg.Timeout
			cfg.HTTPClient = &withTimeout
		}
	}

	return cfg, nil
}

// WithBasePath overrides the server the operations are sent to
func WithBasePath(basePath string) Option {
	return func(c *Configuration) error {
		u, err := url.Parse(basePath)
		if err != nil {
			return fmt.Errorf("invalid base path %q: %w", basePath, err)
		}

		if !u.IsAbs() || u.Host == "" {
			return fmt.Errorf("invalid base path %q: must be an absolute URL", basePath)
		}

		if u.RawQuery != "" || u.Fragment != "" {
			return fmt.Errorf("invalid base path %q: must not carry a query or fragment", basePath)
		}

		c.BasePath = strings.TrimRight(u.String(), "/")
		return nil
	}
}

// WithHTTPClient allows overriding the default Doer. This is useful for tests.
func WithHTTPClient(doer HTTPRequestDoer) Option {
	return func(c *Configuration) error {
		if doer == nil {
			return fmt.Errorf("http client cannot be nil")
		}
		c.HTTPClient = doer
		return nil
	}
}

// WithTimeout sets the overall request timeout of the http.Client. It works with
// WithHTTPClient in either order and never replaces a custom doer.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Configuration) error {
		if timeout < 0 {
			return fmt.Errorf("timeout cannot be negative")
		}
		c.Timeout = timeout
		return nil
	}
}

// WithDefaultHeader adds a header sent with every request
func WithDefaultHeader(name, value string) Option {
	return func(c *Configuration) error {
		if name == "" {
			return fmt.Errorf("header name cannot be empty")
		}
		c.DefaultHeaders[http.CanonicalHeaderKey(name)] = value
		return nil
	}
}

func WithUserAgent(userAgent string) Option {
	return func(c *Configuration) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithRateLimiter throttles dispatch on the client side
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *Configuration) error {
		c.RateLimiter = limiter
		return nil
	}
}

func WithLogger(logger logr.Logger) Option {
	return func(c *Configuration) error {
		c.Logger = logger
		return nil
	}
}
