// Package apperr defines the error kinds shared by every feature.
// Handlers classify errors with errors.Is / errors.As against these kinds
// instead of matching on messages.
package apperr

import "errors"

var (
	// ErrNotFound marks errors for a referenced record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks errors for a write that would violate a uniqueness rule.
	ErrConflict = errors.New("conflict")
)

// Error is a kinded error whose Message is safe to show to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound returns a client-facing error of kind ErrNotFound.
func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Conflict returns a client-facing error of kind ErrConflict.
func Conflict(msg string) *Error {
	return &Error{Kind: ErrConflict, Message: msg}
}

// ValidationError reports malformed or missing client input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation returns a new ValidationError with the given message.
func Validation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// ConstraintError reports a storage schema violation that slipped past input
// validation. Field names the first violated field.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string { return e.Message }
