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
	"io"
	"net/http"
	"time"
)

// Client sends operations to the server described by its Configuration.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	cfg *Configuration
}

// NewClient creates a client from the default configuration and opts
func NewClient(opts ...Option) (*Client, error) {
	cfg, err := NewConfiguration(opts...)
	if err != nil {
		return nil, err
	}

	return &Client{cfg: cfg}, nil
}

// Configuration returns the configuration the client was built with
func (c *Client) Configuration() *Configuration {
	return c.cfg
}

// Execute builds the request for b, sends it and decodes the answer according to the
// builder's response kind
func Execute[T any](ctx context.Context, c *Client, b *RequestBuilder[T]) (*Response[T], error) {
	op := b.operation.ID

	req, err := b.Build(c.cfg)
	if err != nil {
		return nil, &Error{Kind: KindBuild, Operation: op, Err: err}
	}

	status, header, raw, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}

	body, err := b.decode(raw)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Operation: op, StatusCode: status, Body: raw, Err: err}
	}

	return &Response[T]{
		StatusCode: status,
		Header:     header,
		RawBody:    raw,
		Body:       body,
	}, nil
}

// Go runs Execute on its own goroutine and returns immediately. completion is called
// exactly once, with a nil result on failure and a nil error on success.
func Go[T any](ctx context.Context, c *Client, b *RequestBuilder[T], completion func(*T, error)) {
	go func() {
		resp, err := Execute(ctx, c, b)
		if err != nil {
			completion(nil, err)
			return
		}
		completion(resp.Body, nil)
	}()
}

func (c *Client) send(ctx context.Context, req *Request) (int, http.Header, []byte, error) {
	log := c.cfg.Logger.WithValues("operation", req.operation, "method", req.method, "url", req.url)

	if c.cfg.RateLimiter != nil {
		if err := c.cfg.RateLimiter.Wait(ctx); err != nil {
			return 0, nil, nil, &Error{Kind: KindTransport, Operation: req.operation, Err: fmt.Errorf("rate limiter: %w", err)}
		}
	}

	httpReq, err := req.newHTTPRequest(ctx)
	if err != nil {
		return 0, nil, nil, &Error{Kind: KindBuild, Operation: req.operation, Err: err}
	}

	start := time.Now()

	resp, err := c.cfg.HTTPClient.Do(httpReq)
	if err != nil {
		log.V(1).Info("request failed", "error", err.Error(), "duration", time.Since(start))
		return 0, nil, nil, &Error{Kind: KindTransport, Operation: req.operation, Err: err}
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, nil, &Error{Kind: KindTransport, Operation: req.operation, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	log.V(1).Info("request completed", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, resp.Header, raw, &Error{Kind: KindStatus, Operation: req.operation, StatusCode: resp.StatusCode, Body: raw}
	}

	return resp.StatusCode, resp.Header, raw, nil
}
