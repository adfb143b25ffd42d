package engine

import "errors"

// Predefined errors
var (
	// ErrEmptyPath is returned when no database path is provided
	ErrEmptyPath = errors.New("sq3 engine: database path is empty")

	// ErrClosed is returned when the database handle has already been closed
	ErrClosed = errors.New("sq3 engine: database is closed")
)
