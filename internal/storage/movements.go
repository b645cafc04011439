// ABOUTME: Movement CRUD operations for SQLite storage.
// ABOUTME: Constraint violations surface as storage sentinels, never pre-checked.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// CreateMovement inserts a new movement, creating the table first if needed.
func (d *DB) CreateMovement(ctx context.Context, m *models.Movement) error {
	if err := d.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("create movement: %w", err)
	}

	// A NULL id lets SQLite pick the next rowid.
	id := sql.NullInt64{Int64: m.ID, Valid: m.ID != 0}

	result, err := d.db.ExecContext(ctx, `
		INSERT INTO movements (id, name, is_upper, require_weight)
		VALUES (?, ?, ?, ?)`,
		id, m.Name, m.IsUpper, m.RequireWeight)
	if err != nil {
		return fmt.Errorf("create movement %q: %w", m.Name, classifyConstraint(err))
	}

	if m.ID == 0 {
		assigned, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("create movement %q: read assigned id: %w", m.Name, err)
		}
		m.ID = assigned
	}
	return nil
}

// GetMovement retrieves a movement by its exact name.
func (d *DB) GetMovement(ctx context.Context, name string) (*models.Movement, error) {
	var m models.Movement
	err := d.db.GetContext(ctx, &m, `
		SELECT id, name, is_upper, require_weight
		FROM movements
		WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("get movement %q: %w", name, err)
	}
	return &m, nil
}

// ListMovements returns every stored movement in the order SQLite yields
// them. No ORDER BY is applied.
func (d *DB) ListMovements(ctx context.Context) ([]*models.Movement, error) {
	movements := []*models.Movement{}
	if err := d.db.SelectContext(ctx, &movements, `
		SELECT id, name, is_upper, require_weight
		FROM movements`); err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}

// DeleteMovement removes every movement whose name matches exactly.
func (d *DB) DeleteMovement(ctx context.Context, name string) (int64, error) {
	result, err := d.db.ExecContext(ctx, "DELETE FROM movements WHERE name = ?", name)
	if err != nil {
		return 0, fmt.Errorf("delete movement %q: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete movement %q: %w", name, err)
	}
	return affected, nil
}
