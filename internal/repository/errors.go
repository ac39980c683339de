package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the query.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a write violates a unique constraint.
	ErrConflict = errors.New("conflict")
)
