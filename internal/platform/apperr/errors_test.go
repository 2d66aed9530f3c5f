package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindedErrors(t *testing.T) {
	t.Parallel()

	notFound := NotFound("user not found")
	conflict := Conflict("username already exists")

	assert.Equal(t, "user not found", notFound.Error())
	assert.ErrorIs(t, notFound, ErrNotFound)
	assert.NotErrorIs(t, notFound, ErrConflict)

	assert.Equal(t, "username already exists", conflict.Error())
	assert.ErrorIs(t, conflict, ErrConflict)

	// wrapping keeps both the sentinel identity and the kind
	wrapped := fmt.Errorf("lookup: %w", notFound)
	assert.ErrorIs(t, wrapped, notFound)
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var appErr *Error
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "user not found", appErr.Message)
}

func TestValidationAndConstraintErrors(t *testing.T) {
	t.Parallel()

	var ve *ValidationError
	err := fmt.Errorf("append: %w", Validation("duration is required"))
	assert.True(t, errors.As(err, &ve))
	assert.Equal(t, "duration is required", ve.Message)

	ce := &ConstraintError{Field: "duration", Message: "duration (0) is less than minimum allowed value (1)"}
	assert.Equal(t, ce.Message, ce.Error())
}
