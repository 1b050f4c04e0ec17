// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

// rolesAssignConfig holds configuration for the roles assign command.
type rolesAssignConfig struct {
	email   string
	role    string
	timeout time.Duration
}

// NewRolesCmd creates the roles command and its subcommands.
func NewRolesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage credential roles",
	}
	cmd.AddCommand(newRolesAssignCmd())
	return cmd
}

func newRolesAssignCmd() *cobra.Command {
	cfg := &rolesAssignConfig{}

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Grant a role to a credential",
		Long: `Grant a role to the credential registered under --email. The role
appears in the holder's claims from their next login or refresh.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDatabaseConfig(cmd, nil, func(c *Config, deps *Deps, logger *slog.Logger) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
				defer cancel()
				return runRolesAssign(ctx, cmd, c, deps, logger, cfg)
			})
		},
	}

	cmd.Flags().StringVar(&cfg.email, "email", "", "email of the credential")
	cmd.Flags().StringVar(&cfg.role, "role", "", "role to grant (e.g. Admin)")
	cmd.Flags().DurationVar(&cfg.timeout, "timeout", defaultCommandTimeout, "timeout for database operations")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func runRolesAssign(ctx context.Context, cmd *cobra.Command, cfg *Config, deps *Deps, logger *slog.Logger, rc *rolesAssignConfig) error {
	if rc.email == "" || rc.role == "" {
		return oops.Code("INVALID_ARGUMENT").Errorf("--email and --role are required")
	}

	credentials, db, err := openCredentials(ctx, cfg, deps)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := credentials.AssignRole(ctx, rc.email, rc.role); err != nil {
		return oops.With("operation", "assign role").With("role", rc.role).Wrap(err)
	}

	cmd.Printf("Granted %s to %s\n", rc.role, rc.email)
	logger.Info("role assigned", "role", rc.role)
	return nil
}
