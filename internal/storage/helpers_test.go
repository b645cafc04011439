// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides isolated SQLite and badger stores under t.TempDir().
package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(context.Background(), dbPath)
	require.NoError(t, err, "failed to open test db")
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func setupTestBadger(t *testing.T) *BadgerStore {
	t.Helper()
	store, err := OpenBadger(filepath.Join(t.TempDir(), "badger"))
	require.NoError(t, err, "failed to open test badger store")
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// backends returns one fresh store per implementation.
func backends(t *testing.T) map[string]func(t *testing.T) Repository {
	t.Helper()
	return map[string]func(t *testing.T) Repository{
		"sqlite": func(t *testing.T) Repository { return setupTestDB(t) },
		"badger": func(t *testing.T) Repository { return setupTestBadger(t) },
	}
}
