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

package mirror

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/cogniteo/petstore-users/pkg/userpool"
)

// Result describes what a reconcile did to the target
type Result string

const (
	ResultCreated   Result = "Created"
	ResultUpdated   Result = "Updated"
	ResultDeleted   Result = "Deleted"
	ResultUnchanged Result = "Unchanged"
)

// DefaultConcurrency is used by ReconcileAll when no positive limit is given
const DefaultConcurrency = 4

// Reconciler mirrors users from Source into Target
type Reconciler struct {
	Source userpool.Client
	Target userpool.Client
	Logger logr.Logger
}

// Reconcile makes the target copy of username match the source.
// A user missing from the source is removed from the target.
func (r *Reconciler) Reconcile(ctx context.Context, username string) (Result, error) {
	if r.Source == nil || r.Target == nil {
		return "", fmt.Errorf("reconciler requires both a source and a target")
	}
	if username == "" {
		return "", fmt.Errorf("username cannot be empty")
	}

	log := r.Logger.WithValues("username", username)
	log.Info("Reconciling User")

	desired, err := r.Source.GetUser(ctx, username)
	if err != nil {
		if !errors.Is(err, userpool.ErrNotFound) {
			return "", fmt.Errorf("failed to get source user: %w", err)
		}
		if err := r.Target.DeleteUser(ctx, username); err != nil {
			log.Error(err, "Failed to delete target user")
			return "", fmt.Errorf("failed to delete target user: %w", err)
		}
		log.Info("User removed from target")
		return ResultDeleted, nil
	}

	desired = mirrored(desired)
	desired.Username = username

	current, err := r.Target.GetUser(ctx, username)
	if err != nil {
		if !errors.Is(err, userpool.ErrNotFound) {
			return "", fmt.Errorf("failed to get target user: %w", err)
		}
		if err := r.Target.CreateUser(ctx, desired); err != nil {
			log.Error(err, "Failed to create target user")
			return "", fmt.Errorf("failed to create target user: %w", err)
		}
		log.Info("User created in target")
		return ResultCreated, nil
	}

	if *mirrored(current) == *desired {
		return ResultUnchanged, nil
	}

	if err := r.Target.UpdateUser(ctx, desired); err != nil {
		log.Error(err, "Failed to update target user")
		return "", fmt.Errorf("failed to update target user: %w", err)
	}
	log.Info("User updated in target")
	return ResultUpdated, nil
}

// ReconcileAll reconciles usernames with at most concurrency reconciles in flight.
// Results are indexed like usernames; the first error is returned.
func (r *Reconciler) ReconcileAll(ctx context.Context, usernames []string, concurrency int) ([]Result, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(usernames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, username := range usernames {
		g.Go(func() error {
			res, err := r.Reconcile(gctx, username)
			if err != nil {
				return fmt.Errorf("user %q: %w", username, err)
			}
			results[i] = res
			return nil
		})
	}

	return results, g.Wait()
}

// mirrored returns a copy without the fields a user pool does not keep
func mirrored(u *userpool.User) *userpool.User {
	c := *u
	c.ID = 0
	c.Password = ""
	return &c
}
