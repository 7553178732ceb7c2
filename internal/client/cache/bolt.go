package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

var bucketFingerprints = []byte("fingerprints")

type BoltCache struct {
	db *bbolt.DB
}

// OpenBoltCache opens or creates the bbolt file at path, creating its
// parent directory when needed.
func OpenBoltCache(path string) (*BoltCache, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("cache: create directory: %w", err)
	}
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("cache: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketFingerprints)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache: create bucket: %w", err)
	}
	return &BoltCache{db: db}, nil
}

func (c *BoltCache) Get(_ context.Context, key string) (string, error) {
	var v string
	err := c.db.View(func(tx *bbolt.Tx) error {
		v = string(tx.Bucket(bucketFingerprints).Get([]byte(key)))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("cache: get %s: %w", key, err)
	}
	return v, nil
}

func (c *BoltCache) Set(_ context.Context, key, value string) error {
	err := c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFingerprints).Put([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("cache: put %s: %w", key, err)
	}
	return nil
}

func (c *BoltCache) Delete(_ context.Context, key string) error {
	err := c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketFingerprints).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("cache: delete %s: %w", key, err)
	}
	return nil
}

func (c *BoltCache) Close() error { return c.db.Close() }
