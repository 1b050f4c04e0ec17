// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

//go:build integration

package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/gatekeeper/gatekeeper/internal/store"
)

func tableExists(ctx context.Context, qualified string) bool {
	pool, err := store.Open(ctx, connStr, store.DefaultPoolOptions())
	Expect(err).NotTo(HaveOccurred())
	defer pool.Close()

	var exists bool
	err = pool.QueryRow(ctx, `SELECT to_regclass($1) IS NOT NULL`, qualified).Scan(&exists)
	Expect(err).NotTo(HaveOccurred())
	return exists
}

var _ = Describe("Migrator", Ordered, func() {
	var identity, app *store.Migrator

	BeforeAll(func() {
		var err error
		identity, err = store.NewMigrator(connStr, store.SchemaIdentity)
		Expect(err).NotTo(HaveOccurred())
		app, err = store.NewMigrator(connStr, store.SchemaApp)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			Expect(identity.Close()).To(Succeed())
			Expect(app.Close()).To(Succeed())
		})
	})

	It("starts at version zero", func() {
		version, dirty, err := identity.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(BeZero())
		Expect(dirty).To(BeFalse())
	})

	It("applies both schemas to one database independently", func(ctx SpecContext) {
		Expect(identity.Up()).To(Succeed())
		Expect(app.Up()).To(Succeed())

		idVersion, _, err := identity.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(idVersion).To(Equal(uint(2)))

		appVersion, _, err := app.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(appVersion).To(Equal(uint(1)))

		Expect(tableExists(ctx, "identity.refresh_tokens")).To(BeTrue())
		Expect(tableExists(ctx, "app.principals")).To(BeTrue())
	})

	It("is idempotent", func() {
		Expect(identity.Up()).To(Succeed())
		pending, err := identity.PendingMigrations()
		Expect(err).NotTo(HaveOccurred())
		Expect(pending).To(BeEmpty())
	})

	It("steps back and forward", func(ctx SpecContext) {
		Expect(identity.Steps(-1)).To(Succeed())
		Expect(tableExists(ctx, "identity.refresh_tokens")).To(BeFalse())
		Expect(tableExists(ctx, "identity.credentials")).To(BeTrue())

		Expect(identity.Steps(1)).To(Succeed())
		Expect(tableExists(ctx, "identity.refresh_tokens")).To(BeTrue())
	})

	It("rolls one schema down without touching the other", func(ctx SpecContext) {
		Expect(app.Down()).To(Succeed())
		Expect(tableExists(ctx, "app.principals")).To(BeFalse())
		Expect(tableExists(ctx, "identity.credentials")).To(BeTrue())

		Expect(app.Up()).To(Succeed())
	})

	It("forces a version", func() {
		Expect(identity.Force(1)).To(Succeed())
		version, dirty, err := identity.Version()
		Expect(err).NotTo(HaveOccurred())
		Expect(version).To(Equal(uint(1)))
		Expect(dirty).To(BeFalse())
		Expect(identity.Force(2)).To(Succeed())
	})
})
