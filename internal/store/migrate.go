// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package store

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Register pgx/v5 database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/samber/oops"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// Schema names one independently versioned set of migrations.
type Schema string

// Migration sets. Each keeps its own version table so both can be applied to
// one database or to two.
const (
	SchemaIdentity Schema = "identity"
	SchemaApp      Schema = "app"
)

// Schemas lists every migration set in apply order.
var Schemas = []Schema{SchemaIdentity, SchemaApp}

func (s Schema) dir() string { return "migrations/" + string(s) }

func (s Schema) versionTable() string { return string(s) + "_schema_migrations" }

func (s Schema) valid() bool { return slices.Contains(Schemas, s) }

// migrateIface abstracts golang-migrate so the Migrator can be tested
// without a database.
type migrateIface interface {
	Up() error
	Down() error
	Steps(n int) error
	Version() (version uint, dirty bool, err error)
	Force(version int) error
	Close() (source error, database error)
}

// Migrator applies one Schema's migrations to one database.
type Migrator struct {
	m      migrateIface
	schema Schema
}

// NewMigrator creates a Migrator for schema against databaseURL. postgres://
// and postgresql:// URLs are rewritten to the pgx5:// scheme.
func NewMigrator(databaseURL string, schema Schema) (*Migrator, error) {
	if !schema.valid() {
		return nil, oops.Code("MIGRATION_UNKNOWN_SCHEMA").Errorf("unknown schema %q", schema)
	}

	migrateURL, err := migrationURL(databaseURL, schema)
	if err != nil {
		return nil, err
	}

	source, err := iofs.New(migrationsFS, schema.dir())
	if err != nil {
		return nil, oops.Code("MIGRATION_SOURCE_FAILED").
			With("operation", "create migration source").
			With("schema", string(schema)).
			Wrap(err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, migrateURL)
	if err != nil {
		_ = source.Close() //nolint:errcheck // init error takes precedence
		return nil, oops.Code("MIGRATION_INIT_FAILED").
			With("operation", "initialize migrator").
			With("schema", string(schema)).
			Wrap(err)
	}

	return &Migrator{m: m, schema: schema}, nil
}

// migrationURL converts databaseURL to the pgx5 scheme and points the driver
// at the schema's own version table.
func migrationURL(databaseURL string, schema Schema) (string, error) {
	u, err := url.Parse(databaseURL)
	if err != nil {
		return "", oops.Code("MIGRATION_INIT_FAILED").
			With("operation", "parse database url").
			Wrap(errors.New("database url is malformed"))
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		u.Scheme = "pgx5"
	}
	q := u.Query()
	if q.Get("x-migrations-table") == "" {
		q.Set("x-migrations-table", schema.versionTable())
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Schema returns the migration set this Migrator manages.
func (m *Migrator) Schema() Schema { return m.schema }

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	if err := m.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return oops.Code("MIGRATION_UP_FAILED").With("schema", string(m.schema)).Wrap(err)
	}
	return nil
}

// Down rolls back every migration, dropping the schema's tables and data.
func (m *Migrator) Down() error {
	if err := m.m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return oops.Code("MIGRATION_DOWN_FAILED").With("schema", string(m.schema)).Wrap(err)
	}
	return nil
}

// Steps applies n migrations. Positive n migrates up, negative n migrates down.
func (m *Migrator) Steps(n int) error {
	if n == 0 {
		return nil
	}
	if err := m.m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return oops.Code("MIGRATION_STEPS_FAILED").With("schema", string(m.schema)).With("steps", n).Wrap(err)
	}
	return nil
}

// Version returns the current migration version and dirty state. It returns
// 0, false when nothing has been applied.
func (m *Migrator) Version() (version uint, dirty bool, err error) {
	version, dirty, err = m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, oops.Code("MIGRATION_VERSION_FAILED").With("schema", string(m.schema)).Wrap(err)
	}
	return version, dirty, nil
}

// Force sets the recorded version without running migrations. It is only
// meant for recovering from a dirty state.
func (m *Migrator) Force(version int) error {
	if version < 0 {
		return oops.Code("INVALID_VERSION").Errorf("version must be non-negative, got %d", version)
	}
	if err := m.m.Force(version); err != nil {
		return oops.Code("MIGRATION_FORCE_FAILED").
			With("schema", string(m.schema)).
			With("version", version).
			Wrap(err)
	}
	return nil
}

// Close releases the source and database handles.
func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	switch {
	case srcErr != nil && dbErr != nil:
		return oops.Code("MIGRATION_CLOSE_FAILED").
			With("component", "both").
			Errorf("source: %v; database: %v", srcErr, dbErr)
	case srcErr != nil:
		return oops.Code("MIGRATION_CLOSE_FAILED").With("component", "source").Wrap(srcErr)
	case dbErr != nil:
		return oops.Code("MIGRATION_CLOSE_FAILED").With("component", "database").Wrap(dbErr)
	}
	return nil
}

// PendingMigrations returns the versions Up would apply, ascending.
func (m *Migrator) PendingMigrations() ([]uint, error) {
	current, _, err := m.Version()
	if err != nil {
		return nil, oops.With("operation", "get pending migrations").Wrap(err)
	}
	all, err := migrationVersions(m.schema)
	if err != nil {
		return nil, oops.With("operation", "get pending migrations").Wrap(err)
	}

	var pending []uint
	for _, v := range all {
		if v > current {
			pending = append(pending, v)
		}
	}
	return pending, nil
}

// AppliedMigrations returns the versions already applied, ascending.
func (m *Migrator) AppliedMigrations() ([]uint, error) {
	current, _, err := m.Version()
	if err != nil {
		return nil, oops.With("operation", "get applied migrations").Wrap(err)
	}
	if current == 0 {
		return nil, nil
	}
	all, err := migrationVersions(m.schema)
	if err != nil {
		return nil, oops.With("operation", "get applied migrations").Wrap(err)
	}

	var applied []uint
	for _, v := range all {
		if v <= current {
			applied = append(applied, v)
		}
	}
	return applied, nil
}

// migrationVersions lists the schema's embedded versions in ascending order.
// Files that do not match NNNNNN_name.up.sql are skipped.
func migrationVersions(schema Schema) ([]uint, error) {
	entries, err := fs.ReadDir(migrationsFS, schema.dir())
	if err != nil {
		return nil, oops.Code("MIGRATION_LIST_FAILED").
			With("operation", "read migrations dir").
			With("schema", string(schema)).
			Wrap(err)
	}

	var versions []uint
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		var version uint
		if _, err := fmt.Sscanf(name, "%06d", &version); err != nil {
			slog.Warn("migration file name doesn't match expected format, skipping",
				"filename", name,
				"schema", string(schema),
				"expected_format", "NNNNNN_name.up.sql",
				"error", err)
			continue
		}
		versions = append(versions, version)
	}
	slices.Sort(versions)
	return slices.Compact(versions), nil
}

// MigrationName returns the NNNNNN_name of a schema's migration, or "" if the
// version does not exist.
func MigrationName(schema Schema, version uint) (string, error) {
	entries, err := fs.ReadDir(migrationsFS, schema.dir())
	if err != nil {
		return "", oops.Code("MIGRATION_READ_FAILED").
			With("operation", "read migrations dir").
			With("schema", string(schema)).
			Wrap(err)
	}

	prefix := fmt.Sprintf("%06d_", version)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".up.sql") {
			return strings.TrimSuffix(name, ".up.sql"), nil
		}
	}
	return "", nil
}
