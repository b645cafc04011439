// ABOUTME: Repository interface for movement storage.
// ABOUTME: Defines the contract shared by the SQLite and badger backends.
package storage

import (
	"context"

	"github.com/harperreed/lift/internal/models"
)

// Repository defines the storage interface for the movement library.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// CreateMovement stores m. A zero ID is assigned by the store and
	// written back to m.
	CreateMovement(ctx context.Context, m *models.Movement) error
	GetMovement(ctx context.Context, name string) (*models.Movement, error)
	ListMovements(ctx context.Context) ([]*models.Movement, error)
	// DeleteMovement removes movements with exactly this name and reports
	// how many were removed. Zero is not an error.
	DeleteMovement(ctx context.Context, name string) (int64, error)

	Close() error
}
