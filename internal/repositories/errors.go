package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Services match on
// these instead of inspecting driver-specific failures.
var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)
