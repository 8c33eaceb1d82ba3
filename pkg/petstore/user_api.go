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

// Package petstore is the client of the petstore User resource. Every operation comes in
// three forms: XxxRequest returns the request builder, Xxx executes it and waits, and
// XxxAsync executes it in the background and reports through a completion callback.
package petstore

import (
	"context"

	v1 "github.com/cogniteo/petstore-users/api/v1"
	"github.com/cogniteo/petstore-users/pkg/openapi"
)

// UserAPI groups the operations of the User resource
type UserAPI struct {
	client *openapi.Client
}

// NewUserAPI creates a UserAPI that sends its requests through client
func NewUserAPI(client *openapi.Client) *UserAPI {
	return &UserAPI{client: client}
}

// CreateUserRequest builds POST /user.
// This can only be done by the logged in user.
func CreateUserRequest(body v1.User) *openapi.RequestBuilder[openapi.Void] {
	return openapi.NewNonDecodableBuilder(openapi.Operation{
		ID:           "createUser",
		Method:       openapi.MethodPost,
		PathTemplate: "/user",
		Body:         body,
		HasBody:      true,
	})
}

// CreateUser creates a user
func (a *UserAPI) CreateUser(ctx context.Context, body v1.User) error {
	_, err := CreateUserRequest(body).Execute(ctx, a.client)
	return err
}

func (a *UserAPI) CreateUserAsync(ctx context.Context, body v1.User, completion func(*openapi.Void, error)) {
	openapi.Go(ctx, a.client, CreateUserRequest(body), completion)
}

// CreateUsersWithArrayInputRequest builds POST /user/createWithArray
func CreateUsersWithArrayInputRequest(body []v1.User) *openapi.RequestBuilder[openapi.Void] {
	return openapi.NewNonDecodableBuilder(openapi.Operation{
		ID:           "createUsersWithArrayInput",
		Method:       openapi.MethodPost,
		PathTemplate: "/user/createWithArray",
		Body:         v1.UserList(body),
		HasBody:      true,
	})
}

// CreateUsersWithArrayInput creates the given users
func (a *UserAPI) CreateUsersWithArrayInput(ctx context.Context, body []v1.User) error {
	_, err := CreateUsersWithArrayInputRequest(body).Execute(ctx, a.client)
	return err
}

func (a *UserAPI) CreateUsersWithArrayInputAsync(ctx context.Context, body []v1.User, completion func(*openapi.Void, error)) {
	openapi.Go(ctx, a.client, CreateUsersWithArrayInputRequest(body), completion)
}

// CreateUsersWithListInputRequest builds POST /user/createWithList
func CreateUsersWithListInputRequest(body []v1.User) *openapi.RequestBuilder[openapi.Void] {
	return openapi.NewNonDecodableBuilder(openapi.Operation{
		ID:           "createUsersWithListInput",
		Method:       openapi.MethodPost,
		PathTemplate: "/user/createWithList",
		Body:         v1.UserList(body),
		HasBody:      true,
	})
}

// CreateUsersWithListInput creates the given users
func (a *UserAPI) CreateUsersWithListInput(ctx context.Context, body []v1.User) error {
	_, err := CreateUsersWithListInputRequest(body).Execute(ctx, a.client)
	return err
}

func (a *UserAPI) CreateUsersWithListInputAsync(ctx context.Context, body []v1.User, completion func(*openapi.Void, error)) {
	openapi.Go(ctx, a.client, CreateUsersWithListInputRequest(body), completion)
}

// DeleteUserRequest builds DELETE /user/{username}.
// This can only be done by the logged in user.
func DeleteUserRequest(username string) *openapi.RequestBuilder[openapi.Void] {
	return openapi.NewNonDecodableBuilder(openapi.Operation{
		ID:           "deleteUser",
		Method:       openapi.MethodDelete,
		PathTemplate: "/user/{username}",
		PathParams:   map[string]any{"username": username},
	})
}

// DeleteUser deletes the user with the given name
func (a *UserAPI) DeleteUser(ctx context.Context, username string) error {
	_, err := DeleteUserRequest(username).Execute(ctx, a.client)
	return err
}

func (a *UserAPI) DeleteUserAsync(ctx context.Context, username string, completion func(*openapi.Void, error)) {
	openapi.Go(ctx, a.client, DeleteUserRequest(username), completion)
}

// GetUserByNameRequest builds GET /user/{username}
func GetUserByNameRequest(username string) *openapi.RequestBuilder[v1.User] {
	return openapi.NewDecodableBuilder[v1.User](openapi.Operation{
		ID:           "getUserByName",
		Method:       openapi.MethodGet,
		PathTemplate: "/user/{username}",
		PathParams:   map[string]any{"username": username},
	})
}

// GetUserByName fetches a user. Use user1 for testing.
func (a *UserAPI) GetUserByName(ctx context.Context, username string) (*v1.User, error) {
	resp, err := GetUserByNameRequest(username).Execute(ctx, a.client)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (a *UserAPI) GetUserByNameAsync(ctx context.Context, username string, completion func(*v1.User, error)) {
	openapi.Go(ctx, a.client, GetUserByNameRequest(username), completion)
}

// LoginUserRequest builds GET /user/login?username=&password=
func LoginUserRequest(username, password string) *openapi.RequestBuilder[string] {
	return openapi.NewDecodableBuilder[string](openapi.Operation{
		ID:           "loginUser",
		Method:       openapi.MethodGet,
		PathTemplate: "/user/login",
		QueryParams: []openapi.QueryParam{
			{Name: "username", Value: username},
			{Name: "password", Value: password},
		},
	})
}

// LoginUser logs the user into the system and returns the session token
func (a *UserAPI) LoginUser(ctx context.Context, username, password string) (string, error) {
	resp, err := LoginUserRequest(username, password).Execute(ctx, a.client)
	if err != nil {
		return "", err
	}
	return *resp.Body, nil
}

func (a *UserAPI) LoginUserAsync(ctx context.Context, username, password string, completion func(*string, error)) {
	openapi.Go(ctx, a.client, LoginUserRequest(username, password), completion)
}

// LogoutUserRequest builds GET /user/logout
func LogoutUserRequest() *openapi.RequestBuilder[openapi.Void] {
	return openapi.NewNonDecodableBuilder(openapi.Operation{
		ID:           "logoutUser",
		Method:       openapi.MethodGet,
		PathTemplate: "/user/logout",
	})
}

// LogoutUser logs out the current session
func (a *UserAPI) LogoutUser(ctx context.Context) error {
	_, err := LogoutUserRequest().Execute(ctx, a.client)
	return err
}

func (a *UserAPI) LogoutUserAsync(ctx context.Context, completion func(*openapi.Void, error)) {
	openapi.Go(ctx, a.client, LogoutUserRequest(), completion)
}

// UpdateUserRequest builds PUT /user/{username}.
// This can only be done by the logged in user.
func UpdateUserRequest(username string, body v1.User) *openapi.RequestBuilder[openapi.Void] {
	return openapi.NewNonDecodableBuilder(openapi.Operation{
		ID:           "updateUser",
		Method:       openapi.MethodPut,
		PathTemplate: "/user/{username}",
		PathParams:   map[string]any{"username": username},
		Body:         body,
		HasBody:      true,
	})
}

// UpdateUser replaces the user stored under username with body
func (a *UserAPI) UpdateUser(ctx context.Context, username string, body v1.User) error {
	_, err := UpdateUserRequest(username, body).Execute(ctx, a.client)
	return err
}

func (a *UserAPI) UpdateUserAsync(ctx context.Context, username string, body v1.User, completion func(*openapi.Void, error)) {
	openapi.Go(ctx, a.client, UpdateUserRequest(username, body), completion)
}
