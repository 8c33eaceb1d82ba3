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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider/types"

	"github.com/cogniteo/petstore-users/pkg/userpool"
)

// Cognito attribute names the petstore user fields are stored under
const (
	attrEmail      = "email"
	attrGivenName  = "given_name"
	attrFamilyName = "family_name"
	attrPhone      = "phone_number"
	attrRawPhone   = "custom:phone"
	attrUserStatus = "custom:user_status"
)

// phone_number only accepts E.164, other phone values go to attrRawPhone
var e164 = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

// AWSClient implements the userpool.Client interface for AWS Cognito
type AWSClient struct {
	cognito    CognitoAPI
	userPoolID string
}

var _ userpool.Client = (*AWSClient)(nil)

// NewAWSClient creates a new AWS Cognito client using the default credential chain
func NewAWSClient(ctx context.Context, userPoolID string) (*AWSClient, error) {
	if userPoolID == "" {
		return nil, fmt.Errorf("userPoolID cannot be empty")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSClient{
		cognito:    cognitoidentityprovider.NewFromConfig(cfg),
		userPoolID: userPoolID,
	}, nil
}

// NewAWSClientByName creates a new AWS Cognito client by finding user pool ID from name
func NewAWSClientByName(ctx context.Context, userPoolName string) (*AWSClient, error) {
	if userPoolName == "" {
		return nil, fmt.Errorf("userPoolName cannot be empty")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	cognito := cognitoidentityprovider.NewFromConfig(cfg)

	userPoolID, err := findUserPoolIDByName(ctx, cognito, userPoolName)
	if err != nil {
		return nil, fmt.Errorf("failed to find user pool by name %s: %w", userPoolName, err)
	}

	return &AWSClient{
		cognito:    cognito,
		userPoolID: userPoolID,
	}, nil
}

// findUserPoolIDByName finds a user pool ID by its name
func findUserPoolIDByName(ctx context.Context, cognito CognitoAPI,
	userPoolName string) (string, error) {
	var nextToken *string

	for {
		input := &cognitoidentityprovider.ListUserPoolsInput{
			MaxResults: aws.Int32(60), // Max allowed by AWS
			NextToken:  nextToken,
		}

		output, err := cognito.ListUserPools(ctx, input)
		if err != nil {
			return "", fmt.Errorf("failed to list user pools: %w", err)
		}

		for _, userPool := range output.UserPools {
			if userPool.Name != nil && strings.EqualFold(*userPool.Name, userPoolName) && userPool.Id != nil {
				return *userPool.Id, nil
			}
		}

		nextToken = output.NextToken
		if nextToken == nil {
			break
		}
	}

	return "", fmt.Errorf("user pool with name %s not found", userPoolName)
}

// CreateUser creates a new user in the Cognito user pool.
// An existing user with the same name is updated instead.
func (c *AWSClient) CreateUser(ctx context.Context, user *userpool.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}
	if user.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	set, _ := toAttributes(user)

	input := &cognitoidentityprovider.AdminCreateUserInput{
		UserPoolId:     aws.String(c.userPoolID),
		Username:       aws.String(user.Username),
		UserAttributes: set,
		MessageAction:  types.MessageActionTypeSuppress, // Don't send welcome email
	}

	if _, err := c.cognito.AdminCreateUser(ctx, input); err != nil {
		var userExistsErr *types.UsernameExistsException
		if errors.As(err, &userExistsErr) {
			return c.UpdateUser(ctx, user)
		}
		return fmt.Errorf("failed to create user %s: %w", user.Username, err)
	}

	return nil
}

// GetUser retrieves a user from the Cognito user pool by username
func (c *AWSClient) GetUser(ctx context.Context, username string) (*userpool.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	input := &cognitoidentityprovider.AdminGetUserInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(username),
	}

	output, err := c.cognito.AdminGetUser(ctx, input)
	if err != nil {
		var userNotFoundErr *types.UserNotFoundException
		if errors.As(err, &userNotFoundErr) {
			return nil, fmt.Errorf("user %s: %w", username, userpool.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}

	return fromAttributes(username, output.UserAttributes), nil
}

// UpdateUser writes the mirrored attributes of an existing user and removes the ones
// that are now empty
func (c *AWSClient) UpdateUser(ctx context.Context, user *userpool.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}
	if user.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	set, unset := toAttributes(user)

	if len(set) > 0 {
		_, err := c.cognito.AdminUpdateUserAttributes(ctx, &cognitoidentityprovider.AdminUpdateUserAttributesInput{
			UserPoolId:     aws.String(c.userPoolID),
			Username:       aws.String(user.Username),
			UserAttributes: set,
		})
		if err != nil {
			return fmt.Errorf("failed to update user attributes for %s: %w", user.Username, err)
		}
	}

	if len(unset) > 0 {
		_, err := c.cognito.AdminDeleteUserAttributes(ctx, &cognitoidentityprovider.AdminDeleteUserAttributesInput{
			UserPoolId:         aws.String(c.userPoolID),
			Username:           aws.String(user.Username),
			UserAttributeNames: unset,
		})
		if err != nil {
			return fmt.Errorf("failed to delete user attributes for %s: %w", user.Username, err)
		}
	}

	return nil
}

// DeleteUser removes a user from the Cognito user pool
func (c *AWSClient) DeleteUser(ctx context.Context, username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	input := &cognitoidentityprovider.AdminDeleteUserInput{
		UserPoolId: aws.String(c.userPoolID),
		Username:   aws.String(username),
	}

	_, err := c.cognito.AdminDeleteUser(ctx, input)
	if err != nil {
		// User doesn't exist, this is not an error for deletion
		var userNotFoundErr *types.UserNotFoundException
		if errors.As(err, &userNotFoundErr) {
			return nil
		}
		return fmt.Errorf("failed to delete user %s: %w", username, err)
	}

	return nil
}

// toAttributes splits the mirrored fields of user into attributes to write and names of
// attributes to remove
func toAttributes(user *userpool.User) ([]types.AttributeType, []string) {
	var set []types.AttributeType
	var unset []string

	add := func(name, value string) {
		if value == "" {
			unset = append(unset, name)
			return
		}
		set = append(set, types.AttributeType{Name: aws.String(name), Value: aws.String(value)})
	}

	add(attrEmail, user.Email)
	add(attrGivenName, user.FirstName)
	add(attrFamilyName, user.LastName)
	if e164.MatchString(user.Phone) {
		add(attrPhone, user.Phone)
		add(attrRawPhone, "")
	} else {
		add(attrPhone, "")
		add(attrRawPhone, user.Phone)
	}

	status := ""
	if user.UserStatus != 0 {
		status = strconv.FormatInt(int64(user.UserStatus), 10)
	}
	add(attrUserStatus, status)

	return set, unset
}

func fromAttributes(username string, attributes []types.AttributeType) *userpool.User {
	user := &userpool.User{Username: username}

	for _, attr := range attributes {
		if attr.Name == nil || attr.Value == nil {
			continue
		}

		switch *attr.Name {
		case attrEmail:
			user.Email = *attr.Value
		case attrGivenName:
			user.FirstName = *attr.Value
		case attrFamilyName:
			user.LastName = *attr.Value
		case attrPhone, attrRawPhone:
			user.Phone = *attr.Value
		case attrUserStatus:
			if n, err := strconv.ParseInt(*attr.Value, 10, 32); err == nil {
				user.UserStatus = int32(n)
			}
		}
	}

	return user
}
