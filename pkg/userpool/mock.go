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

package userpool

import (
	"context"
	"fmt"
	"sync"
)

// MockClient implements the Client interface in memory for testing
type MockClient struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMockClient creates a new mock client, optionally seeded with users
func NewMockClient(users ...User) *MockClient {
	m := &MockClient{
		users: make(map[string]User),
	}
	for _, u := range users {
		m.users[u.Username] = u
	}
	return m
}

// CreateUser creates a new user in the mock store
func (m *MockClient) CreateUser(ctx context.Context, user *User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}
	if user.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; exists {
		return fmt.Errorf("user %s already exists", user.Username)
	}

	// store a copy to avoid reference issues
	m.users[user.Username] = *user
	return nil
}

// GetUser retrieves a user from the mock store
func (m *MockClient) GetUser(ctx context.Context, username string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[username]
	if !exists {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}

	return &user, nil
}

// UpdateUser updates an existing user in the mock store
func (m *MockClient) UpdateUser(ctx context.Context, user *User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}
	if user.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[user.Username]; !exists {
		return fmt.Errorf("user %s: %w", user.Username, ErrNotFound)
	}

	m.users[user.Username] = *user
	return nil
}

// DeleteUser removes a user from the mock store
func (m *MockClient) DeleteUser(ctx context.Context, username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, username)
	return nil
}

// Len returns the number of stored users
func (m *MockClient) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}
