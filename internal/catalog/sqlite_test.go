package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSQLite_MatchesDefaultCatalog(t *testing.T) {
	c, err := LoadSQLite(context.Background(), ":memory:", "./migrations")
	require.NoError(t, err)

	assert.Equal(t, Default().All(), c.All())
}

func TestLoadSQLite_FileDatabaseIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")

	first, err := LoadSQLite(context.Background(), dbPath, "./migrations")
	require.NoError(t, err)

	// second run finds the schema already current
	second, err := LoadSQLite(context.Background(), dbPath, "./migrations")
	require.NoError(t, err)

	assert.Equal(t, first.All(), second.All())
	assert.Equal(t, 10, second.Len())
}

func TestLoadSQLite_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := LoadSQLite(ctx, ":memory:", "./migrations")
	assert.Error(t, err)
}

func TestLoadSQLite_MissingMigrations(t *testing.T) {
	_, err := LoadSQLite(context.Background(), ":memory:", "./does-not-exist")
	assert.ErrorContains(t, err, "could not create migrate instance")
}
