package database

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationVersions_Sorted(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_b.sql": {Data: []byte("SELECT 2")},
		"migrations/001_a.sql": {Data: []byte("SELECT 1")},
		"migrations/README.md": {Data: []byte("notes")},
		"migrations/010_c.sql": {Data: []byte("SELECT 10")},
		"migrations/sub/x.sql": {Data: []byte("SELECT 0")},
	}

	versions, err := migrationVersions(fsys)

	require.NoError(t, err)
	assert.Equal(t, []string{"001_a", "002_b", "010_c"}, versions)
}

func TestEmbeddedMigrations_Present(t *testing.T) {
	versions, err := migrationVersions(migrationFiles)

	require.NoError(t, err)
	require.NotEmpty(t, versions)
	assert.Equal(t, "001_init", versions[0])
}
