// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package main

import (
	"context"
	"io"
	"net/http"

	"github.com/gatekeeper/gatekeeper/internal/api"
	"github.com/gatekeeper/gatekeeper/internal/auth/postgres"
	"github.com/gatekeeper/gatekeeper/internal/observability"
	"github.com/gatekeeper/gatekeeper/internal/store"
)

// Deps contains injectable dependencies for the commands.
// All fields with nil values will use their default implementations.
type Deps struct {
	// DatabaseOpener connects to a database URL.
	// Default: store.Open with store.DefaultPoolOptions
	DatabaseOpener func(ctx context.Context, url string) (Database, error)

	// MigratorFactory creates a migrator for one schema.
	// Default: store.NewMigrator
	MigratorFactory func(url string, schema store.Schema) (SchemaMigrator, error)

	// ObservabilityServerFactory creates the metrics and probe server.
	// Default: observability.NewServer
	ObservabilityServerFactory func(addr string, ready observability.ReadinessChecker) ObservabilityServer

	// APIServerFactory creates the API server.
	// Default: api.NewServer
	APIServerFactory func(addr string, handler http.Handler) APIServer

	// LogWriter receives log output. Default: stderr.
	LogWriter io.Writer
}

// Database is the connection surface the commands use; *pgxpool.Pool
// satisfies it.
type Database interface {
	postgres.Pool
	Ping(ctx context.Context) error
	Close()
}

// SchemaMigrator wraps the methods used from store.Migrator.
type SchemaMigrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (uint, bool, error)
	Force(version int) error
	PendingMigrations() ([]uint, error)
	AppliedMigrations() ([]uint, error)
	Close() error
}

// ObservabilityServer wraps the methods used from observability.Server.
type ObservabilityServer interface {
	Start() (<-chan error, error)
	Stop(ctx context.Context) error
	Addr() string
	Metrics() *observability.Metrics
}

// APIServer wraps the methods used from api.Server.
type APIServer interface {
	Start() (<-chan error, error)
	Stop(ctx context.Context) error
	Addr() string
}

func (d *Deps) withDefaults() *Deps {
	out := Deps{}
	if d != nil {
		out = *d
	}
	if out.DatabaseOpener == nil {
		out.DatabaseOpener = func(ctx context.Context, url string) (Database, error) {
			pool, err := store.Open(ctx, url, store.DefaultPoolOptions())
			if err != nil {
				return nil, err
			}
			return pool, nil
		}
	}
	if out.MigratorFactory == nil {
		out.MigratorFactory = func(url string, schema store.Schema) (SchemaMigrator, error) {
			m, err := store.NewMigrator(url, schema)
			if err != nil {
				return nil, err
			}
			return m, nil
		}
	}
	if out.ObservabilityServerFactory == nil {
		out.ObservabilityServerFactory = func(addr string, ready observability.ReadinessChecker) ObservabilityServer {
			return observability.NewServer(addr, ready)
		}
	}
	if out.APIServerFactory == nil {
		out.APIServerFactory = func(addr string, handler http.Handler) APIServer {
			return api.NewServer(addr, handler)
		}
	}
	return &out
}
