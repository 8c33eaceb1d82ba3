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

// Package v1 contains the wire models of the petstore User resource.
package v1

// User is the petstore representation of an account.
// NOTE: json tags are required. Any new fields you add must have json tags for the fields to be serialized.
type User struct {
	ID int64 `json:"id,omitempty"`

	// Username is the unique login name and the path key of the resource
	Username string `json:"username,omitempty"`

	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
	Password  string `json:"password,omitempty"`
	Phone     string `json:"phone,omitempty"`

	// UserStatus is the server-defined status code of the account
	UserStatus int32 `json:"userStatus,omitempty"`
}

// UserList is the body of the batch create operations.
type UserList []User
