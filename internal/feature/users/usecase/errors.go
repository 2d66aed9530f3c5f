package usecase

import "exercise_tracker/internal/platform/apperr"

// ErrUsernameRequired is returned when registration has no username.
var ErrUsernameRequired = apperr.Validation("username is required")
