// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package main

import (
	"fmt"
	"log/slog"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/gatekeeper/gatekeeper/internal/logging"
	"github.com/gatekeeper/gatekeeper/internal/xdg"
)

// serviceName stamps every log record.
const serviceName = "gatekeeper"

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the gatekeeper CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gatekeeper",
		Short: "gatekeeper - credential and session issuance",
		Long: `gatekeeper registers users, authenticates them and issues
signed access tokens with rotating refresh tokens.`,
		Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (YAML, default $XDG_CONFIG_HOME/gatekeeper/config.yaml if present)")
	cmd.PersistentFlags().String("log-format", defaultLogFormat, "log format (json or text)")
	cmd.PersistentFlags().String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewSeedCmd())
	cmd.AddCommand(NewRolesCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// NewVersionCmd creates the version subcommand.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("gatekeeper %s\n", cmd.Root().Version)
		},
	}
}

// withDatabaseConfig loads configuration and installs logging for the
// maintenance commands, which need only the database settings.
func withDatabaseConfig(cmd *cobra.Command, deps *Deps, fn func(*Config, *Deps, *slog.Logger) error) error {
	path, err := configPath()
	if err != nil {
		return err
	}
	cfg, err := loadConfig(path, cmd.Flags(), nil)
	if err != nil {
		return err
	}
	if err := cfg.ValidateDatabase(); err != nil {
		return err
	}
	deps = deps.withDefaults()
	logger, err := newLogger(cfg, deps)
	if err != nil {
		return err
	}
	return fn(cfg, deps, logger)
}

// configPath returns --config, or the XDG config file when the flag is unset
// and that file exists.
func configPath() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	path, err := xdg.FindConfigFile()
	if err != nil {
		return "", oops.Code("CONFIG_INVALID").With("path", xdg.ConfigFile()).Wrap(err)
	}
	return path, nil
}

// newLogger builds the process logger and installs it as the slog default.
func newLogger(cfg *Config, deps *Deps) (*slog.Logger, error) {
	opts, err := cfg.LogOptions()
	if err != nil {
		return nil, err
	}
	logger := logging.Setup(serviceName, version, opts, deps.LogWriter)
	slog.SetDefault(logger)
	return logger, nil
}
