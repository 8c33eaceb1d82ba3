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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-logr/logr"
	"github.com/goccy/go-json"

	v1 "github.com/cogniteo/petstore-users/api/v1"
	"github.com/cogniteo/petstore-users/internal/catalog"
	"github.com/cogniteo/petstore-users/internal/config"
	"github.com/cogniteo/petstore-users/internal/mirror"
	"github.com/cogniteo/petstore-users/pkg/cognito"
	"github.com/cogniteo/petstore-users/pkg/openapi"
	"github.com/cogniteo/petstore-users/pkg/petstore"
	"github.com/cogniteo/petstore-users/pkg/userpool"
)

type cli struct {
	app *kingpin.Application
	cfg *config.Config
	out io.Writer

	// newTarget opens the user pool the mirror command writes to
	newTarget func(ctx context.Context) (userpool.Client, error)

	create          *kingpin.CmdClause
	createFile      *string
	createArray     *kingpin.CmdClause
	createArrayFile *string
	createList      *kingpin.CmdClause
	createListFile  *string
	get             *kingpin.CmdClause
	getUsername     *string
	del             *kingpin.CmdClause
	delUsername     *string
	login           *kingpin.CmdClause
	loginUsername   *string
	loginPassword   *string
	logout          *kingpin.CmdClause
	update          *kingpin.CmdClause
	updateUsername  *string
	updateFile      *string
	mirror          *kingpin.CmdClause
	mirrorUsernames *[]string
	operations      *kingpin.CmdClause
}

func newCLI(out io.Writer) *cli {
	app := kingpin.New("petstore-users", "Manage the users of a petstore server.")
	app.HelpFlag.Short('h')

	c := &cli{
		app: app,
		cfg: config.Register(app),
		out: out,
	}
	c.newTarget = c.cognitoTarget

	c.create = app.Command("create", "Create a user.")
	c.createFile = c.create.Flag("file", "JSON file with the user, - for stdin.").Short('f').Default("-").String()

	c.createArray = app.Command("create-with-array", "Create users from a JSON array.")
	c.createArrayFile = c.createArray.Flag("file", "JSON file with the users, - for stdin.").Short('f').Default("-").String()

	c.createList = app.Command("create-with-list", "Create users from a JSON list.")
	c.createListFile = c.createList.Flag("file", "JSON file with the users, - for stdin.").Short('f').Default("-").String()

	c.get = app.Command("get", "Get a user by user name.")
	c.getUsername = c.get.Arg("username", "User name.").Required().String()

	c.del = app.Command("delete", "Delete a user.")
	c.delUsername = c.del.Arg("username", "User name.").Required().String()

	c.login = app.Command("login", "Log a user into the system.")
	c.loginUsername = c.login.Arg("username", "User name.").Required().String()
	c.loginPassword = c.login.Arg("password", "Password in clear text.").String()

	c.logout = app.Command("logout", "Log out the current session.")

	c.update = app.Command("update", "Replace a user.")
	c.updateUsername = c.update.Arg("username", "User name.").Required().String()
	c.updateFile = c.update.Flag("file", "JSON file with the user, - for stdin.").Short('f').Default("-").String()

	c.mirror = app.Command("mirror", "Mirror users into the Cognito user pool.")
	c.mirrorUsernames = c.mirror.Arg("usernames", "User names to mirror.").Required().Strings()

	c.operations = app.Command("operations", "List the documented operations.")

	return c
}

func (c *cli) run(ctx context.Context, args []string) error {
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}

	logger, err := c.cfg.NewLogger()
	if err != nil {
		return err
	}
	setupLog = logger.WithName("setup")

	client, err := openapi.NewClient(c.cfg.ClientOptions(logger.WithName("openapi"))...)
	if err != nil {
		return fmt.Errorf("unable to create client: %w", err)
	}
	api := petstore.NewUserAPI(client)

	switch command {
	case c.create.FullCommand():
		var user v1.User
		if err := readJSON(*c.createFile, &user); err != nil {
			return err
		}
		return api.CreateUser(ctx, user)

	case c.createArray.FullCommand():
		var users v1.UserList
		if err := readJSON(*c.createArrayFile, &users); err != nil {
			return err
		}
		return api.CreateUsersWithArrayInput(ctx, users)

	case c.createList.FullCommand():
		var users v1.UserList
		if err := readJSON(*c.createListFile, &users); err != nil {
			return err
		}
		return api.CreateUsersWithListInput(ctx, users)

	case c.get.FullCommand():
		user, err := api.GetUserByName(ctx, *c.getUsername)
		if err != nil {
			return err
		}
		return c.print(user)

	case c.del.FullCommand():
		return api.DeleteUser(ctx, *c.delUsername)

	case c.login.FullCommand():
		session, err := api.LoginUserWithResponse(ctx, *c.loginUsername, *c.loginPassword)
		if err != nil {
			return err
		}
		return c.print(session)

	case c.logout.FullCommand():
		return api.LogoutUser(ctx)

	case c.update.FullCommand():
		var user v1.User
		if err := readJSON(*c.updateFile, &user); err != nil {
			return err
		}
		return api.UpdateUser(ctx, *c.updateUsername, user)

	case c.mirror.FullCommand():
		return c.runMirror(ctx, logger, api)

	case c.operations.FullCommand():
		cat, err := catalog.Load(ctx)
		if err != nil {
			return err
		}
		return c.print(cat.Operations())
	}

	return fmt.Errorf("unknown command %q", command)
}

func (c *cli) runMirror(ctx context.Context, logger logr.Logger, api *petstore.UserAPI) error {
	target, err := c.newTarget(ctx)
	if err != nil {
		return err
	}

	r := &mirror.Reconciler{
		Source: petstore.NewDirectory(api),
		Target: target,
		Logger: logger.WithName("mirror"),
	}

	usernames := *c.mirrorUsernames
	results, err := r.ReconcileAll(ctx, usernames, c.cfg.Concurrency)
	if err != nil {
		return err
	}

	out := make(map[string]mirror.Result, len(usernames))
	for i, username := range usernames {
		out[username] = results[i]
	}
	return c.print(out)
}

func (c *cli) cognitoTarget(ctx context.Context) (userpool.Client, error) {
	switch {
	case c.cfg.CognitoUserPoolID != "":
		setupLog.Info("Initializing AWS Cognito client", "userPoolId", c.cfg.CognitoUserPoolID)
		return cognito.NewClient(ctx, c.cfg.CognitoUserPoolID)
	case c.cfg.CognitoUserPoolName != "":
		setupLog.Info("Initializing AWS Cognito client", "userPoolName", c.cfg.CognitoUserPoolName)
		return cognito.NewClientByName(ctx, c.cfg.CognitoUserPoolName)
	}
	return nil, fmt.Errorf("mirror needs --cognito-user-pool-id or --cognito-user-pool-name")
}

func (c *cli) print(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readJSON(path string, v any) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
