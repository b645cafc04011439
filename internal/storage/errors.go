// ABOUTME: Sentinel errors shared by every storage backend.
// ABOUTME: Maps SQLite constraint codes onto backend-neutral errors.
package storage

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrDuplicateName is returned when a movement name is already stored.
	ErrDuplicateName = errors.New("movement name already exists")

	// ErrDuplicateID is returned when a movement id is already stored.
	ErrDuplicateID = errors.New("movement id already exists")

	// ErrNotFound is returned when no movement matches a lookup.
	ErrNotFound = errors.New("movement not found")
)

// classifyConstraint wraps err with the matching sentinel when it is a
// SQLite constraint violation, and returns it unchanged otherwise.
func classifyConstraint(err error) error {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return fmt.Errorf("%w: %w", ErrDuplicateName, err)
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %w", ErrDuplicateID, err)
	default:
		return err
	}
}
