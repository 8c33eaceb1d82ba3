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
	"fmt"

	"github.com/cogniteo/petstore-users/pkg/openapi"
	"github.com/cogniteo/petstore-users/pkg/userpool"
)

// Directory exposes a UserAPI as a userpool.Client
type Directory struct {
	api *UserAPI
}

var _ userpool.Client = (*Directory)(nil)

// NewDirectory wraps api
func NewDirectory(api *UserAPI) *Directory {
	return &Directory{api: api}
}

// CreateUser creates a new user in the petstore
func (d *Directory) CreateUser(ctx context.Context, user *userpool.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}
	if err := d.api.CreateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user.Username, err)
	}
	return nil
}

// GetUser retrieves a user, mapping a 404 answer to userpool.ErrNotFound
func (d *Directory) GetUser(ctx context.Context, username string) (*userpool.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	user, err := d.api.GetUserByName(ctx, username)
	if err != nil {
		if openapi.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", username, userpool.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}

	return user, nil
}

// UpdateUser replaces the user stored under user.Username
func (d *Directory) UpdateUser(ctx context.Context, user *userpool.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}
	if user.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if err := d.api.UpdateUser(ctx, user.Username, *user); err != nil {
		return fmt.Errorf("failed to update user %s: %w", user.Username, err)
	}
	return nil
}

// DeleteUser removes a user; a 404 answer counts as success
func (d *Directory) DeleteUser(ctx context.Context, username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	if err := d.api.DeleteUser(ctx, username); err != nil {
		if openapi.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to delete user %s: %w", username, err)
	}
	return nil
}
