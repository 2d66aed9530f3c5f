package usecase

import (
	"exercise_tracker/internal/feature/exercises/domain/entity"
	userentity "exercise_tracker/internal/feature/users/domain/entity"
)

// AssembleLog joins user with exercises, keeping their order. Count is the
// number of entries passed in, not the user's total.
func AssembleLog(user userentity.User, exercises []entity.Exercise) entity.Log {
	items := make([]entity.LogItem, 0, len(exercises))
	for _, e := range exercises {
		items = append(items, entity.LogItem{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.Date,
		})
	}
	return entity.Log{
		UserID:   user.ID,
		Username: user.Username,
		Count:    len(items),
		Items:    items,
	}
}
