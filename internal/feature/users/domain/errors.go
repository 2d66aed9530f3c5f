// Package domain defines domain-level errors for the users feature.
package domain

import "exercise_tracker/internal/platform/apperr"

// Domain errors for identity operations.
// Adapters translate driver-specific failures into these values.
var (
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = apperr.Conflict("username already exists")

	// ErrUserNotFound is returned when no user matches the lookup, including
	// ids that are not even well-formed for the store.
	ErrUserNotFound = apperr.NotFound("user not found")
)
