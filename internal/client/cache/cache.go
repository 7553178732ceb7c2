// Package cache keeps the fingerprints a viewer has observed or expects,
// keyed by integrity.LatestKey and integrity.PendingKey. Two backends exist:
// a table in the client's SQLite database and a standalone bbolt file.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
)

// FingerprintCache is a string key/value store. Get returns "" for an
// absent key.
type FingerprintCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open builds the backend named by kind. The sqlite backend shares db; the
// bolt backend keeps its own file under dir.
func Open(kind string, db *sql.DB, dir string) (FingerprintCache, error) {
	switch kind {
	case "sqlite":
		return NewSQLiteCache(db), nil
	case "bolt":
		return OpenBoltCache(filepath.Join(dir, "fingerprints.db"))
	default:
		return nil, fmt.Errorf("unknown cache backend %q", kind)
	}
}
