package worlds

import "errors"

var (
	// Registration errors.
	ErrWorldExists   = errors.New("worlds: world already exists")
	ErrWorldNotFound = errors.New("worlds: world not found")
	ErrInvalidID     = errors.New("worlds: invalid world id")

	// Lifecycle errors.
	ErrInvalidState = errors.New("worlds: invalid state transition")
	ErrNotStarted   = errors.New("worlds: world not started")
)
