// ABOUTME: Movement model for exercise definitions.
// ABOUTME: A movement is a named exercise with body-region and equipment flags.
package models

import "fmt"

// Movement represents an exercise definition stored in the movement library.
type Movement struct {
	// ID is assigned by the store when zero.
	ID            int64  `db:"id" json:"id" yaml:"id"`
	Name          string `db:"name" json:"name" yaml:"name"`
	IsUpper       bool   `db:"is_upper" json:"is_upper" yaml:"is_upper"`
	RequireWeight bool   `db:"require_weight" json:"require_weight" yaml:"require_weight"`
}

// NewMovement creates a Movement without an ID so the store assigns one.
func NewMovement(name string, isUpper, requireWeight bool) *Movement {
	return &Movement{
		Name:          name,
		IsUpper:       isUpper,
		RequireWeight: requireWeight,
	}
}

// WithID sets an explicit identifier.
func (m *Movement) WithID(id int64) *Movement {
	m.ID = id
	return m
}

// String renders the movement as a single debug line.
func (m Movement) String() string {
	return fmt.Sprintf("Movement { id: %d, name: %q, is_upper: %t, require_weight: %t }",
		m.ID, m.Name, m.IsUpper, m.RequireWeight)
}
