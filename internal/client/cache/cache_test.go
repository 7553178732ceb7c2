package cache

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/cofund/internal/integrity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func sqliteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE fingerprints (
  key        TEXT PRIMARY KEY,
  value      TEXT NOT NULL,
  updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`)
	require.NoError(t, err)
	return db
}

func backends(t *testing.T) map[string]FingerprintCache {
	t.Helper()

	bolt, err := Open("bolt", nil, t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	sqlite, err := Open("sqlite", sqliteDB(t), "")
	require.NoError(t, err)

	return map[string]FingerprintCache{"bolt": bolt, "sqlite": sqlite}
}

func TestFingerprintCache(t *testing.T) {
	for name, c := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			latest := integrity.LatestKey("c1", "u1")
			pending := integrity.PendingKey("c1", "u1")

			v, err := c.Get(ctx, latest)
			require.NoError(t, err)
			assert.Empty(t, v)

			require.NoError(t, c.Set(ctx, latest, "aa"))
			require.NoError(t, c.Set(ctx, pending, "bb"))
			require.NoError(t, c.Set(ctx, latest, "cc"))

			v, err = c.Get(ctx, latest)
			require.NoError(t, err)
			assert.Equal(t, "cc", v)

			require.NoError(t, c.Delete(ctx, latest))
			require.NoError(t, c.Delete(ctx, latest))
			v, err = c.Get(ctx, latest)
			require.NoError(t, err)
			assert.Empty(t, v)

			v, err = c.Get(ctx, pending)
			require.NoError(t, err)
			assert.Equal(t, "bb", v)
		})
	}
}

func TestBoltCache_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fp.db")
	ctx := context.Background()

	c, err := OpenBoltCache(path)
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "k", "v"))
	require.NoError(t, c.Close())

	c, err = OpenBoltCache(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open("redis", nil, "")
	assert.ErrorContains(t, err, "unknown cache backend")
}
