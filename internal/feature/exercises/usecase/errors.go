package usecase

import "exercise_tracker/internal/platform/apperr"

// Validation errors for entry and log input. Messages are returned to clients verbatim.
var (
	ErrIDRequired          = apperr.Validation("id is required")
	ErrDescriptionRequired = apperr.Validation("description is required")
	ErrDurationRequired    = apperr.Validation("duration is required")
	ErrDurationNotNumber   = apperr.Validation("duration is not a number")
	ErrDateInvalid         = apperr.Validation("date is invalid")
	ErrFromDateInvalid     = apperr.Validation("from date is invalid")
	ErrToDateInvalid       = apperr.Validation("to date is invalid")
	ErrLimitNotNumber      = apperr.Validation("limit is not a number")
)
