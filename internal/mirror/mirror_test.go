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

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cogniteo/petstore-users/pkg/userpool"
)

// failingClient wraps a client and fails selected calls
type failingClient struct {
	userpool.Client
	getErr    error
	createErr error
}

func (f *failingClient) GetUser(ctx context.Context, username string) (*userpool.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.Client.GetUser(ctx, username)
}

func (f *failingClient) CreateUser(ctx context.Context, user *userpool.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	return f.Client.CreateUser(ctx, user)
}

var _ = Describe("Reconciler", func() {
	var (
		ctx        context.Context
		source     *userpool.MockClient
		target     *userpool.MockClient
		reconciler *Reconciler
		alice      userpool.User
	)

	BeforeEach(func() {
		ctx = context.Background()
		alice = userpool.User{
			ID:         10,
			Username:   "alice",
			FirstName:  "Alice",
			LastName:   "Liddell",
			Email:      "alice@example.com",
			Password:   "secret",
			Phone:      "+15550100",
			UserStatus: 1,
		}
		source = userpool.NewMockClient(alice)
		target = userpool.NewMockClient()
		reconciler = &Reconciler{Source: source, Target: target, Logger: logr.Discard()}
	})

	Context("When the user exists only in the source", func() {
		It("should create it in the target without the password", func() {
			res, err := reconciler.Reconcile(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(ResultCreated))

			got, err := target.GetUser(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Email).To(Equal("alice@example.com"))
			Expect(got.Password).To(BeEmpty())
			Expect(got.ID).To(BeZero())
		})
	})

	Context("When the target is already in sync", func() {
		It("should leave it unchanged", func() {
			_, err := reconciler.Reconcile(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())

			res, err := reconciler.Reconcile(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(ResultUnchanged))
		})
	})

	Context("When the target copy differs", func() {
		It("should update it", func() {
			Expect(target.CreateUser(ctx, &userpool.User{Username: "alice", Email: "old@example.com"})).To(Succeed())

			res, err := reconciler.Reconcile(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(ResultUpdated))

			got, err := target.GetUser(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Email).To(Equal("alice@example.com"))
			Expect(got.FirstName).To(Equal("Alice"))
		})
	})

	Context("When the user is gone from the source", func() {
		It("should delete it from the target", func() {
			Expect(target.CreateUser(ctx, &userpool.User{Username: "bob"})).To(Succeed())

			res, err := reconciler.Reconcile(ctx, "bob")
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(ResultDeleted))
			Expect(target.Len()).To(Equal(0))
		})

		It("should succeed when the target never had it", func() {
			res, err := reconciler.Reconcile(ctx, "nobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(Equal(ResultDeleted))
		})
	})

	Context("When a client fails", func() {
		It("should return the source error without touching the target", func() {
			reconciler.Source = &failingClient{Client: source, getErr: errors.New("boom")}

			_, err := reconciler.Reconcile(ctx, "alice")
			Expect(err).To(MatchError(ContainSubstring("failed to get source user")))
			Expect(target.Len()).To(Equal(0))
		})

		It("should return the target create error", func() {
			reconciler.Target = &failingClient{Client: target, createErr: errors.New("denied")}

			_, err := reconciler.Reconcile(ctx, "alice")
			Expect(err).To(MatchError(ContainSubstring("failed to create target user")))
		})

		It("should reject an empty username", func() {
			_, err := reconciler.Reconcile(ctx, "")
			Expect(err).To(HaveOccurred())
		})

		It("should reject a missing target", func() {
			reconciler.Target = nil
			_, err := reconciler.Reconcile(ctx, "alice")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("When reconciling many users", func() {
		It("should return one result per username in order", func() {
			Expect(source.CreateUser(ctx, &userpool.User{Username: "carol"})).To(Succeed())
			Expect(target.CreateUser(ctx, &userpool.User{Username: "dave"})).To(Succeed())

			results, err := reconciler.ReconcileAll(ctx, []string{"alice", "carol", "dave"}, 2)
			Expect(err).NotTo(HaveOccurred())
			Expect(results).To(Equal([]Result{ResultCreated, ResultCreated, ResultDeleted}))
			Expect(target.Len()).To(Equal(2))
		})

		It("should report the failing username", func() {
			reconciler.Source = &failingClient{Client: source, getErr: errors.New("unavailable")}

			_, err := reconciler.ReconcileAll(ctx, []string{"alice"}, 0)
			Expect(err).To(MatchError(ContainSubstring(`user "alice"`)))
		})
	})
})
