// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the movements table; safe to apply on every write.
package storage

import "context"

const schema = `
CREATE TABLE IF NOT EXISTS movements (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	is_upper INTEGER,
	require_weight INTEGER
);
`

// EnsureSchema creates the movements table if it does not exist.
func (d *DB) EnsureSchema(ctx context.Context) error {
	_, err := d.db.ExecContext(ctx, schema)
	return err
}
