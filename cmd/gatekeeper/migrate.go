// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/gatekeeper/gatekeeper/internal/store"
)

// schemaAll selects every schema.
const schemaAll = "all"

// migrateConfig holds configuration for the migrate subcommands.
type migrateConfig struct {
	schema string
	steps  int
}

// migrationTarget pairs a schema with the database it lives in.
type migrationTarget struct {
	schema store.Schema
	url    string
}

// migrationTargets resolves which schemas to migrate and where. The app
// schema follows database.principal_url when one is configured.
func migrationTargets(cfg *Config, only string) ([]migrationTarget, error) {
	all := []migrationTarget{
		{schema: store.SchemaIdentity, url: cfg.Database.URL},
		{schema: store.SchemaApp, url: cfg.PrincipalDatabaseURL()},
	}
	if only == "" || only == schemaAll {
		return all, nil
	}
	for _, t := range all {
		if string(t.schema) == only {
			return []migrationTarget{t}, nil
		}
	}
	return nil, oops.Code("MIGRATION_UNKNOWN_SCHEMA").
		With("schema", only).
		Errorf("unknown schema %q (want identity, app or all)", only)
}

// reversed returns targets in teardown order.
func reversed(targets []migrationTarget) []migrationTarget {
	out := slices.Clone(targets)
	slices.Reverse(out)
	return out
}

// withMigrator runs fn against a migrator for t and always closes it.
func withMigrator(deps *Deps, t migrationTarget, fn func(SchemaMigrator) error) error {
	m, err := deps.MigratorFactory(t.url, t.schema)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			slog.Warn("failed to close migrator", "schema", t.schema, "error", closeErr)
		}
	}()
	return fn(m)
}

// migrateUp applies every pending migration to each target in order.
func migrateUp(deps *Deps, targets []migrationTarget, logger *slog.Logger) error {
	for _, t := range targets {
		err := withMigrator(deps, t, func(m SchemaMigrator) error {
			pending, err := m.PendingMigrations()
			if err != nil {
				return err
			}
			if len(pending) == 0 {
				logger.Info("schema up to date", "schema", t.schema)
				return nil
			}
			logger.Info("applying migrations", "schema", t.schema, "count", len(pending))
			return m.Up()
		})
		if err != nil {
			return oops.Code("MIGRATION_FAILED").With("schema", t.schema).With("operation", "up").Wrap(err)
		}
	}
	return nil
}

// NewMigrateCmd creates the migrate command and its subcommands.
func NewMigrateCmd() *cobra.Command {
	cfg := &migrateConfig{}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
		Long: `Manage the identity and app schema migrations. The app schema is
migrated in database.principal_url when one is configured.`,
	}
	cmd.PersistentFlags().StringVar(&cfg.schema, "schema", schemaAll, "schema to operate on (identity, app or all)")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabaseConfig(cmd, nil, func(c *Config, deps *Deps, logger *slog.Logger) error {
				return runMigrateUp(cmd, c, cfg, deps, logger)
			})
		},
	}

	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Long:  `Roll back --steps migrations per schema, or all of them when --steps is 0.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabaseConfig(cmd, nil, func(c *Config, deps *Deps, _ *slog.Logger) error {
				return runMigrateDown(cmd, c, cfg, deps)
			})
		},
	}
	down.Flags().IntVar(&cfg.steps, "steps", 1, "migrations to roll back per schema (0 = all)")

	status := &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabaseConfig(cmd, nil, func(c *Config, deps *Deps, _ *slog.Logger) error {
				return runMigrateStatus(cmd, c, cfg, deps)
			})
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the current migration version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabaseConfig(cmd, nil, func(c *Config, deps *Deps, _ *slog.Logger) error {
				return runMigrateVersion(cmd, c, cfg, deps)
			})
		},
	}

	force := &cobra.Command{
		Use:   "force VERSION",
		Short: "Set the migration version without running migrations",
		Long: `Set the recorded version and clear the dirty flag. Use after fixing a
failed migration by hand. Requires --schema identity or --schema app.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseForceVersion(args[0])
			if err != nil {
				return err
			}
			return withDatabaseConfig(cmd, nil, func(c *Config, deps *Deps, _ *slog.Logger) error {
				return runMigrateForce(cmd, c, cfg, deps, v)
			})
		},
	}

	cmd.AddCommand(up, down, status, versionCmd, force)
	return cmd
}

func runMigrateUp(cmd *cobra.Command, c *Config, cfg *migrateConfig, deps *Deps, logger *slog.Logger) error {
	targets, err := migrationTargets(c, cfg.schema)
	if err != nil {
		return err
	}
	if err := migrateUp(deps, targets, logger); err != nil {
		return err
	}
	cmd.Println("Migrations completed successfully")
	return nil
}

func runMigrateDown(cmd *cobra.Command, c *Config, cfg *migrateConfig, deps *Deps) error {
	if cfg.steps < 0 {
		return oops.Code("INVALID_STEPS").With("steps", cfg.steps).Errorf("steps must not be negative")
	}
	targets, err := migrationTargets(c, cfg.schema)
	if err != nil {
		return err
	}
	for _, t := range reversed(targets) {
		err := withMigrator(deps, t, func(m SchemaMigrator) error {
			if cfg.steps == 0 {
				return m.Down()
			}
			return m.Steps(-cfg.steps)
		})
		if err != nil {
			return oops.Code("MIGRATION_FAILED").With("schema", t.schema).With("operation", "down").Wrap(err)
		}
		cmd.Printf("Rolled back %s\n", t.schema)
	}
	return nil
}

func runMigrateStatus(cmd *cobra.Command, c *Config, cfg *migrateConfig, deps *Deps) error {
	targets, err := migrationTargets(c, cfg.schema)
	if err != nil {
		return err
	}
	for _, t := range targets {
		err := withMigrator(deps, t, func(m SchemaMigrator) error {
			v, dirty, err := m.Version()
			if err != nil {
				return err
			}
			applied, err := m.AppliedMigrations()
			if err != nil {
				return err
			}
			pending, err := m.PendingMigrations()
			if err != nil {
				return err
			}

			cmd.Printf("%s: version %d", t.schema, v)
			if dirty {
				cmd.Print(" (dirty)")
			}
			cmd.Println()
			for _, n := range applied {
				cmd.Printf("  [x] %s\n", migrationLabel(t.schema, n))
			}
			for _, n := range pending {
				cmd.Printf("  [ ] %s\n", migrationLabel(t.schema, n))
			}
			return nil
		})
		if err != nil {
			return oops.Code("MIGRATION_FAILED").With("schema", t.schema).With("operation", "status").Wrap(err)
		}
	}
	return nil
}

func runMigrateVersion(cmd *cobra.Command, c *Config, cfg *migrateConfig, deps *Deps) error {
	targets, err := migrationTargets(c, cfg.schema)
	if err != nil {
		return err
	}
	for _, t := range targets {
		err := withMigrator(deps, t, func(m SchemaMigrator) error {
			v, dirty, err := m.Version()
			if err != nil {
				return err
			}
			if dirty {
				cmd.Printf("%s: %d (dirty)\n", t.schema, v)
			} else {
				cmd.Printf("%s: %d\n", t.schema, v)
			}
			return nil
		})
		if err != nil {
			return oops.Code("MIGRATION_FAILED").With("schema", t.schema).With("operation", "version").Wrap(err)
		}
	}
	return nil
}

func runMigrateForce(cmd *cobra.Command, c *Config, cfg *migrateConfig, deps *Deps, v int) error {
	if cfg.schema == "" || cfg.schema == schemaAll {
		return oops.Code("MIGRATION_SCHEMA_REQUIRED").Errorf("force needs a single --schema")
	}
	targets, err := migrationTargets(c, cfg.schema)
	if err != nil {
		return err
	}
	t := targets[0]
	if err := withMigrator(deps, t, func(m SchemaMigrator) error { return m.Force(v) }); err != nil {
		return oops.Code("MIGRATION_FAILED").With("schema", t.schema).With("operation", "force").Wrap(err)
	}
	cmd.Printf("Forced %s to version %d\n", t.schema, v)
	return nil
}

// parseForceVersion reads the leading integer of s.
func parseForceVersion(s string) (int, error) {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return 0, oops.Code("INVALID_VERSION").With("input", s).Errorf("version must be an integer: %q", s)
	}
	return v, nil
}

func migrationLabel(schema store.Schema, version uint) string {
	name, err := store.MigrationName(schema, version)
	if err != nil || name == "" {
		return fmt.Sprintf("%06d", version)
	}
	return name
}
