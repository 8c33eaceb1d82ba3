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

package petstore

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const (
	headerRateLimit    = "X-Rate-Limit"
	headerExpiresAfter = "X-Expires-After"
)

// Session is the outcome of a login together with the limits the server attached to it
type Session struct {
	Token string `json:"token"`

	// RateLimit is the number of calls per hour allowed by the user, 0 if not sent
	RateLimit int `json:"rateLimit,omitempty"`

	// ExpiresAfter is the UTC date when the token expires, zero if not sent
	ExpiresAfter time.Time `json:"expiresAfter"`
}

// LoginUserWithResponse logs the user in and also reads the X-Rate-Limit and
// X-Expires-After response headers
func (a *UserAPI) LoginUserWithResponse(ctx context.Context, username, password string) (*Session, error) {
	resp, err := LoginUserRequest(username, password).Execute(ctx, a.client)
	if err != nil {
		return nil, err
	}

	return newSession(*resp.Body, resp.Header), nil
}

func newSession(token string, header http.Header) *Session {
	session := &Session{Token: token}

	if v := header.Get(headerRateLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			session.RateLimit = n
		}
	}

	if v := header.Get(headerExpiresAfter); v != "" {
		session.ExpiresAfter = parseExpiry(v)
	}

	return session
}

// parseExpiry accepts the date formats petstore servers are known to send
func parseExpiry(v string) time.Time {
	for _, layout := range []string{time.RFC3339, http.TimeFormat, time.RFC1123Z, time.UnixDate} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

