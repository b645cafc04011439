// ABOUTME: Data migration between movement storage backends.
// ABOUTME: Copies every movement from source to destination, keeping ids.

package storage

import (
	"context"
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Movements int
}

// MigrateData copies all movements from src to dst storage.
// The destination should be empty before calling this function; an id or
// name already present there stops the migration with the storage error.
func MigrateData(ctx context.Context, src, dst Repository) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	movements, err := src.ListMovements(ctx)
	if err != nil {
		return nil, fmt.Errorf("list source movements: %w", err)
	}

	for _, m := range movements {
		if err := dst.CreateMovement(ctx, m); err != nil {
			return summary, fmt.Errorf("create movement %d: %w", m.ID, err)
		}
		summary.Movements++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
