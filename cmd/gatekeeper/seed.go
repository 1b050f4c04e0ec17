// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package main

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/gatekeeper/gatekeeper/internal/auth"
	"github.com/gatekeeper/gatekeeper/internal/auth/postgres"
)

// Default timeout for the maintenance commands.
const defaultCommandTimeout = 30 * time.Second

// NewSeedCmd creates the seed subcommand.
func NewSeedCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the built-in roles",
		Long: `Creates the Member and Admin roles.
This command is idempotent - it will not create duplicates if run multiple times.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabaseConfig(cmd, nil, func(cfg *Config, deps *Deps, logger *slog.Logger) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()
				return runSeed(ctx, cmd, cfg, deps, logger)
			})
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", defaultCommandTimeout, "timeout for database operations (e.g., 30s, 1m)")

	return cmd
}

// openCredentials connects to the identity database and returns the
// credential service over it. The caller closes the database.
func openCredentials(ctx context.Context, cfg *Config, deps *Deps) (*auth.CredentialService, Database, error) {
	db, err := deps.DatabaseOpener(ctx, cfg.Database.URL)
	if err != nil {
		return nil, nil, oops.With("operation", "connect identity database").Wrap(err)
	}
	credentials, err := auth.NewCredentialService(postgres.NewCredentialRepository(db), auth.NewArgon2idHasher())
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return credentials, db, nil
}

func runSeed(ctx context.Context, cmd *cobra.Command, cfg *Config, deps *Deps, logger *slog.Logger) error {
	credentials, db, err := openCredentials(ctx, cfg, deps)
	if err != nil {
		return err
	}
	defer db.Close()

	created, err := credentials.EnsureRoles(ctx, defaultRoles...)
	if err != nil {
		return oops.Code("SEED_FAILED").With("operation", "seed roles").Wrap(err)
	}

	for _, role := range defaultRoles {
		if slices.Contains(created, role) {
			cmd.Printf("Created role: %s\n", role)
		} else {
			cmd.Printf("Role already exists: %s\n", role)
		}
	}
	logger.Info("roles seeded", "created", created)
	return nil
}
