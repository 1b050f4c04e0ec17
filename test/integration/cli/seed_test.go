// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

//go:build integration

package cli_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
)

var _ = Describe("Maintenance commands", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
		cleanupDatabase(ctx, env.pool)
	})

	migrate := func() {
		GinkgoHelper()
		output, err := gatekeeper(ctx, true, "migrate", "up").CombinedOutput()
		Expect(err).NotTo(HaveOccurred(), "migrate failed: %s", string(output))
		Expect(string(output)).To(ContainSubstring("Migrations completed successfully"))
	}

	Describe("migrate", func() {
		It("creates both schemas and reports them applied", func() {
			migrate()

			output, err := gatekeeper(ctx, true, "migrate", "status").CombinedOutput()
			Expect(err).NotTo(HaveOccurred(), "status failed: %s", string(output))
			Expect(string(output)).To(ContainSubstring("[x] 000001_identity"))
			Expect(string(output)).To(ContainSubstring("[x] 000002_refresh_tokens"))
			Expect(string(output)).To(ContainSubstring("[x] 000001_principals"))

			var tables int
			err = env.pool.QueryRow(ctx, `
				SELECT COUNT(*) FROM information_schema.tables
				WHERE table_schema IN ('identity', 'app')
			`).Scan(&tables)
			Expect(err).NotTo(HaveOccurred())
			Expect(tables).To(Equal(5))
		})

		It("rolls the app schema back on its own", func() {
			migrate()

			output, err := gatekeeper(ctx, true, "migrate", "down", "--schema", "app").CombinedOutput()
			Expect(err).NotTo(HaveOccurred(), "down failed: %s", string(output))

			var exists bool
			err = env.pool.QueryRow(ctx, `SELECT to_regclass('app.principals') IS NOT NULL`).Scan(&exists)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())

			err = env.pool.QueryRow(ctx, `SELECT to_regclass('identity.credentials') IS NOT NULL`).Scan(&exists)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})
	})

	Describe("seed", func() {
		It("creates the built-in roles", func() {
			migrate()

			output, err := gatekeeper(ctx, true, "seed").CombinedOutput()
			Expect(err).NotTo(HaveOccurred(), "seed failed: %s", string(output))
			Expect(string(output)).To(ContainSubstring("Created role: Member"))
			Expect(string(output)).To(ContainSubstring("Created role: Admin"))

			var roles []string
			rows, err := env.pool.Query(ctx, `SELECT name FROM identity.roles ORDER BY name`)
			Expect(err).NotTo(HaveOccurred())
			defer rows.Close()
			for rows.Next() {
				var name string
				Expect(rows.Scan(&name)).To(Succeed())
				roles = append(roles, name)
			}
			Expect(rows.Err()).NotTo(HaveOccurred())
			Expect(roles).To(Equal([]string{"Admin", "Member"}))
		})

		It("is idempotent", func() {
			migrate()

			first, err := gatekeeper(ctx, true, "seed").CombinedOutput()
			Expect(err).NotTo(HaveOccurred(), "first seed failed: %s", string(first))

			second, err := gatekeeper(ctx, true, "seed").CombinedOutput()
			Expect(err).NotTo(HaveOccurred(), "second seed failed: %s", string(second))
			Expect(string(second)).To(ContainSubstring("Role already exists: Member"))
			Expect(string(second)).To(ContainSubstring("Role already exists: Admin"))
		})
	})

	Describe("Error handling", func() {
		It("fails with CONFIG_INVALID when the database url is missing", func() {
			output, err := gatekeeper(ctx, false, "seed").CombinedOutput()
			Expect(err).To(HaveOccurred())
			Expect(string(output)).To(ContainSubstring("GATEKEEPER_DATABASE_URL"))
		})

		It("reports an unknown email when assigning a role", func() {
			migrate()

			output, err := gatekeeper(ctx, true, "roles", "assign", "--email", "nobody@example.com", "--role", "Admin").CombinedOutput()
			Expect(err).To(HaveOccurred())
			Expect(string(output)).To(ContainSubstring("not found"))
		})
	})
})
