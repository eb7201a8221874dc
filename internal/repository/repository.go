// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres) and return sql.ErrNoRows for missing rows.
package repository

import "errors"

var (
	// ErrDuplicate is returned when a unique constraint rejects a write.
	ErrDuplicate = errors.New("duplicate key")
	// ErrStale is returned when a guarded update matched no row because the
	// row left the expected state.
	ErrStale = errors.New("row is no longer in the expected state")
)
