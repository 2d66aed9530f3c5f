// Package adapters provides the GORM and MongoDB implementations of the entry store.
package adapters

import (
	"fmt"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	"exercise_tracker/internal/platform/apperr"
)

// minDuration is the smallest duration the store accepts, in minutes.
const minDuration = 1

// checkSchema enforces the stored-entry rules and reports the first violated
// field. Both backends run it right before insert.
func checkSchema(e entity.Exercise) error {
	switch {
	case e.UserID == "":
		return &apperr.ConstraintError{Field: "userId", Message: "userId is required"}
	case e.Description == "":
		return &apperr.ConstraintError{Field: "description", Message: "description is required"}
	case e.Duration < minDuration:
		return &apperr.ConstraintError{
			Field:   "duration",
			Message: fmt.Sprintf("duration (%d) is less than minimum allowed value (%d)", e.Duration, minDuration),
		}
	}
	return nil
}
