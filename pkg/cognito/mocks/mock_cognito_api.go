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

// Package mocks holds testify mocks of the Cognito API surface.
package mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/stretchr/testify/mock"
)

// MockCognitoAPI is a testify mock of cognito.CognitoAPI
type MockCognitoAPI struct {
	mock.Mock
}

// NewMockCognitoAPI creates a mock bound to t; expectations are asserted on cleanup
func NewMockCognitoAPI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCognitoAPI {
	m := &MockCognitoAPI{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCognitoAPI) AdminCreateUser(ctx context.Context, params *cognitoidentityprovider.AdminCreateUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminCreateUserOutput, error) {
	ret := m.Called(ctx, params)

	var out *cognitoidentityprovider.AdminCreateUserOutput
	if v := ret.Get(0); v != nil {
		out = v.(*cognitoidentityprovider.AdminCreateUserOutput)
	}

	return out, ret.Error(1)
}

func (m *MockCognitoAPI) AdminGetUser(ctx context.Context, params *cognitoidentityprovider.AdminGetUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminGetUserOutput, error) {
	ret := m.Called(ctx, params)

	var out *cognitoidentityprovider.AdminGetUserOutput
	if v := ret.Get(0); v != nil {
		out = v.(*cognitoidentityprovider.AdminGetUserOutput)
	}

	return out, ret.Error(1)
}

func (m *MockCognitoAPI) AdminUpdateUserAttributes(ctx context.Context, params *cognitoidentityprovider.AdminUpdateUserAttributesInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminUpdateUserAttributesOutput, error) {
	ret := m.Called(ctx, params)

	var out *cognitoidentityprovider.AdminUpdateUserAttributesOutput
	if v := ret.Get(0); v != nil {
		out = v.(*cognitoidentityprovider.AdminUpdateUserAttributesOutput)
	}

	return out, ret.Error(1)
}

func (m *MockCognitoAPI) AdminDeleteUserAttributes(ctx context.Context, params *cognitoidentityprovider.AdminDeleteUserAttributesInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminDeleteUserAttributesOutput, error) {
	ret := m.Called(ctx, params)

	var out *cognitoidentityprovider.AdminDeleteUserAttributesOutput
	if v := ret.Get(0); v != nil {
		out = v.(*cognitoidentityprovider.AdminDeleteUserAttributesOutput)
	}

	return out, ret.Error(1)
}

func (m *MockCognitoAPI) AdminDeleteUser(ctx context.Context, params *cognitoidentityprovider.AdminDeleteUserInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.AdminDeleteUserOutput, error) {
	ret := m.Called(ctx, params)

	var out *cognitoidentityprovider.AdminDeleteUserOutput
	if v := ret.Get(0); v != nil {
		out = v.(*cognitoidentityprovider.AdminDeleteUserOutput)
	}

	return out, ret.Error(1)
}

func (m *MockCognitoAPI) ListUserPools(ctx context.Context, params *cognitoidentityprovider.ListUserPoolsInput, optFns ...func(*cognitoidentityprovider.Options)) (*cognitoidentityprovider.ListUserPoolsOutput, error) {
	ret := m.Called(ctx, params)

	var out *cognitoidentityprovider.ListUserPoolsOutput
	if v := ret.Get(0); v != nil {
		out = v.(*cognitoidentityprovider.ListUserPoolsOutput)
	}

	return out, ret.Error(1)
}
