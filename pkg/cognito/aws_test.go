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

package cognito

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cogniteo/petstore-users/pkg/cognito/mocks"
	"github.com/cogniteo/petstore-users/pkg/userpool"
)

func attribute(name, value string) types.AttributeType {
	return types.AttributeType{Name: aws.String(name), Value: aws.String(value)}
}

func TestAWSClient_CreateUser(t *testing.T) {
	tests := []struct {
		name       string
		user       *userpool.User
		setupMocks func(*mocks.MockCognitoAPI)
		expectErr  bool
	}{
		{
			name: "successful user creation",
			user: &userpool.User{
				Username:  "theUser",
				Email:     "john@email.com",
				FirstName: "John",
			},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminCreateUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminCreateUserInput) bool {
					return *in.Username == "theUser" &&
						*in.UserPoolId == "test-pool-id" &&
						in.MessageAction == types.MessageActionTypeSuppress &&
						len(in.UserAttributes) == 2
				})).Return(&cognitoidentityprovider.AdminCreateUserOutput{}, nil)
			},
			expectErr: false,
		},
		{
			name: "phone numbers outside E.164 are kept in a custom attribute",
			user: &userpool.User{
				Username: "user1",
				Email:    "john@email.com",
				Phone:    "12345",
			},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminCreateUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminCreateUserInput) bool {
					return assert.ObjectsAreEqual([]types.AttributeType{
						attribute("email", "john@email.com"),
						attribute("custom:phone", "12345"),
					}, in.UserAttributes)
				})).Return(&cognitoidentityprovider.AdminCreateUserOutput{}, nil)
			},
			expectErr: false,
		},
		{
			name: "E.164 phone numbers use phone_number",
			user: &userpool.User{
				Username: "user1",
				Phone:    "+4912345",
			},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminCreateUser", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminCreateUserInput) bool {
					return assert.ObjectsAreEqual([]types.AttributeType{
						attribute("phone_number", "+4912345"),
					}, in.UserAttributes)
				})).Return(&cognitoidentityprovider.AdminCreateUserOutput{}, nil)
			},
			expectErr: false,
		},
		{
			name: "user already exists - updates instead",
			user: &userpool.User{
				Username: "theUser",
				Email:    "john@email.com",
			},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminCreateUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminCreateUserInput")).
					Return(nil, &types.UsernameExistsException{Message: aws.String("User already exists")})
				mockAPI.On("AdminUpdateUserAttributes", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminUpdateUserAttributesInput")).
					Return(&cognitoidentityprovider.AdminUpdateUserAttributesOutput{}, nil)
				mockAPI.On("AdminDeleteUserAttributes", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminDeleteUserAttributesInput")).
					Return(&cognitoidentityprovider.AdminDeleteUserAttributesOutput{}, nil)
			},
			expectErr: false,
		},
		{
			name: "nil user input",
			user: nil,
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				// No mocks needed as it should fail before calling AWS
			},
			expectErr: true,
		},
		{
			name: "empty username",
			user: &userpool.User{Email: "john@email.com"},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				// No mocks needed as it should fail before calling AWS
			},
			expectErr: true,
		},
		{
			name: "AWS error during creation",
			user: &userpool.User{Username: "theUser"},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminCreateUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminCreateUserInput")).
					Return(nil, errors.New("AWS error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := mocks.NewMockCognitoAPI(t)
			tt.setupMocks(mockAPI)

			client := &AWSClient{
				cognito:    mockAPI,
				userPoolID: "test-pool-id",
			}

			err := client.CreateUser(context.Background(), tt.user)

			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAWSClient_GetUser(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		setupMocks func(*mocks.MockCognitoAPI)
		expectErr  bool
		notFound   bool
		expected   *userpool.User
	}{
		{
			name:     "successful user retrieval",
			username: "theUser",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminGetUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminGetUserInput")).
					Return(&cognitoidentityprovider.AdminGetUserOutput{
						Username: aws.String("theUser"),
						Enabled:  true,
						UserAttributes: []types.AttributeType{
							attribute("sub", "0b5c"),
							attribute("email", "john@email.com"),
							attribute("given_name", "John"),
							attribute("family_name", "James"),
							attribute("phone_number", "+4912345"),
							attribute("custom:user_status", "1"),
						},
					}, nil)
			},
			expected: &userpool.User{
				Username:   "theUser",
				Email:      "john@email.com",
				FirstName:  "John",
				LastName:   "James",
				Phone:      "+4912345",
				UserStatus: 1,
			},
		},
		{
			name:     "empty username",
			username: "",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				// No mocks needed as it should fail before calling AWS
			},
			expectErr: true,
		},
		{
			name:     "user not found",
			username: "ghost",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminGetUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminGetUserInput")).
					Return(nil, &types.UserNotFoundException{Message: aws.String("User does not exist.")})
			},
			expectErr: true,
			notFound:  true,
		},
		{
			name:     "AWS error",
			username: "theUser",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminGetUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminGetUserInput")).
					Return(nil, errors.New("throttled"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := mocks.NewMockCognitoAPI(t)
			tt.setupMocks(mockAPI)

			client := &AWSClient{
				cognito:    mockAPI,
				userPoolID: "test-pool-id",
			}

			result, err := client.GetUser(context.Background(), tt.username)

			if tt.expectErr {
				require.Error(t, err)
				assert.Nil(t, result)
				assert.Equal(t, tt.notFound, errors.Is(err, userpool.ErrNotFound))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestAWSClient_UpdateUser(t *testing.T) {
	tests := []struct {
		name       string
		user       *userpool.User
		setupMocks func(*mocks.MockCognitoAPI)
		expectErr  bool
	}{
		{
			name: "all attributes set",
			user: &userpool.User{
				Username:   "theUser",
				Email:      "john@email.com",
				FirstName:  "John",
				LastName:   "James",
				Phone:      "+4912345",
				UserStatus: 2,
			},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminUpdateUserAttributes", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminUpdateUserAttributesInput) bool {
					return len(in.UserAttributes) == 5
				})).Return(&cognitoidentityprovider.AdminUpdateUserAttributesOutput{}, nil)
				mockAPI.On("AdminDeleteUserAttributes", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminDeleteUserAttributesInput) bool {
					return assert.ObjectsAreEqual([]string{"custom:phone"}, in.UserAttributeNames)
				})).Return(&cognitoidentityprovider.AdminDeleteUserAttributesOutput{}, nil)
			},
		},
		{
			name: "free-form phone replaces phone_number",
			user: &userpool.User{
				Username: "user1",
				Email:    "john@email.com",
				Phone:    "12345",
			},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminUpdateUserAttributes", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminUpdateUserAttributesInput) bool {
					return assert.ObjectsAreEqual([]types.AttributeType{
						attribute("email", "john@email.com"),
						attribute("custom:phone", "12345"),
					}, in.UserAttributes)
				})).Return(&cognitoidentityprovider.AdminUpdateUserAttributesOutput{}, nil)
				mockAPI.On("AdminDeleteUserAttributes", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminDeleteUserAttributesInput) bool {
					return assert.ObjectsAreEqual([]string{"given_name", "family_name", "phone_number", "custom:user_status"}, in.UserAttributeNames)
				})).Return(&cognitoidentityprovider.AdminDeleteUserAttributesOutput{}, nil)
			},
		},
		{
			name: "empty attributes are removed",
			user: &userpool.User{
				Username: "theUser",
				Email:    "john@email.com",
			},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminUpdateUserAttributes", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminUpdateUserAttributesInput")).
					Return(&cognitoidentityprovider.AdminUpdateUserAttributesOutput{}, nil)
				mockAPI.On("AdminDeleteUserAttributes", mock.Anything, mock.MatchedBy(func(in *cognitoidentityprovider.AdminDeleteUserAttributesInput) bool {
					return assert.ObjectsAreEqual([]string{"given_name", "family_name", "phone_number", "custom:phone", "custom:user_status"}, in.UserAttributeNames)
				})).Return(&cognitoidentityprovider.AdminDeleteUserAttributesOutput{}, nil)
			},
		},
		{
			name: "nil user input",
			user: nil,
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				// No mocks needed as it should fail before calling AWS
			},
			expectErr: true,
		},
		{
			name: "empty username",
			user: &userpool.User{Email: "john@email.com"},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				// No mocks needed as it should fail before calling AWS
			},
			expectErr: true,
		},
		{
			name: "update attributes fails",
			user: &userpool.User{Username: "theUser", Email: "john@email.com"},
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminUpdateUserAttributes", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminUpdateUserAttributesInput")).
					Return(nil, errors.New("update failed"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := mocks.NewMockCognitoAPI(t)
			tt.setupMocks(mockAPI)

			client := &AWSClient{
				cognito:    mockAPI,
				userPoolID: "test-pool-id",
			}

			err := client.UpdateUser(context.Background(), tt.user)

			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAWSClient_DeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		setupMocks func(*mocks.MockCognitoAPI)
		expectErr  bool
	}{
		{
			name:     "successful user deletion",
			username: "theUser",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminDeleteUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminDeleteUserInput")).
					Return(&cognitoidentityprovider.AdminDeleteUserOutput{}, nil)
			},
		},
		{
			name:     "user not found - not an error",
			username: "ghost",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminDeleteUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminDeleteUserInput")).
					Return(nil, &types.UserNotFoundException{Message: aws.String("User does not exist.")})
			},
		},
		{
			name:     "empty username",
			username: "",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				// No mocks needed as it should fail before calling AWS
			},
			expectErr: true,
		},
		{
			name:     "AWS error during deletion",
			username: "theUser",
			setupMocks: func(mockAPI *mocks.MockCognitoAPI) {
				mockAPI.On("AdminDeleteUser", mock.Anything, mock.AnythingOfType("*cognitoidentityprovider.AdminDeleteUserInput")).
					Return(nil, errors.New("AWS error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAPI := mocks.NewMockCognitoAPI(t)
			tt.setupMocks(mockAPI)

			client := &AWSClient{
				cognito:    mockAPI,
				userPoolID: "test-pool-id",
			}

			err := client.DeleteUser(context.Background(), tt.username)

			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAttributesRoundTrip(t *testing.T) {
	user := &userpool.User{
		Username:   "theUser",
		Email:      "john@email.com",
		FirstName:  "John",
		LastName:   "James",
		Phone:      "+4912345",
		UserStatus: 7,
	}

	set, unset := toAttributes(user)
	assert.Equal(t, []string{"custom:phone"}, unset)
	assert.Equal(t, user, fromAttributes("theUser", set))

	user.Phone = "12345"
	set, unset = toAttributes(user)
	assert.Equal(t, []string{"phone_number"}, unset)
	assert.Equal(t, user, fromAttributes("theUser", set))
}
