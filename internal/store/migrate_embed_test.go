// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Gatekeeper Contributors

package store

import (
	"io/fs"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFS_EmbeddedFiles(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}_\w+\.(up|down)\.sql$`)

	for _, schema := range Schemas {
		t.Run(string(schema), func(t *testing.T) {
			entries, err := fs.ReadDir(migrationsFS, schema.dir())
			require.NoError(t, err)
			require.NotEmpty(t, entries)

			ups, downs := 0, 0
			for _, entry := range entries {
				assert.True(t, pattern.MatchString(entry.Name()),
					"file %s should match NNNNNN_name.(up|down).sql", entry.Name())
				if regexp.MustCompile(`\.up\.sql$`).MatchString(entry.Name()) {
					ups++
				} else {
					downs++
				}
			}
			assert.Equal(t, ups, downs, "every up migration needs a down")
		})
	}
}

func TestMigrationName(t *testing.T) {
	name, err := MigrationName(SchemaIdentity, 1)
	require.NoError(t, err)
	assert.Equal(t, "000001_identity", name)

	name, err = MigrationName(SchemaApp, 1)
	require.NoError(t, err)
	assert.Equal(t, "000001_principals", name)

	name, err = MigrationName(SchemaApp, 99)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestMigrationVersions(t *testing.T) {
	versions, err := migrationVersions(SchemaIdentity)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2}, versions)
}
