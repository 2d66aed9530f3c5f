// Package usecase implements the append and log flows of the exercises feature.
package usecase

import (
	"context"
	"fmt"
	"time"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	userentity "exercise_tracker/internal/feature/users/domain/entity"
)

// UserFinder resolves the owner of an entry.
// Implementations return an error wrapping apperr.ErrNotFound for unknown
// or malformed ids.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (userentity.User, error)
}

// ExerciseRepository abstracts the entry store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ExerciseRepository interface {
	// Create stores e and returns it with its generated ID. Schema violations
	// are reported as *apperr.ConstraintError. It does not check that the
	// user exists.
	Create(ctx context.Context, e entity.Exercise) (entity.Exercise, error)

	// QueryByUser executes q: entries of q.UserID whose date is in q.Range,
	// ordered by date ascending with ties in insertion order, capped at
	// q.Limit when positive.
	QueryByUser(ctx context.Context, q entity.LogQuery) ([]entity.Exercise, error)
}

// ExerciseUsecase provides the append and log flows.
type ExerciseUsecase struct {
	users     UserFinder
	exercises ExerciseRepository
	now       func() time.Time
}

// NewExerciseUsecase creates a new ExerciseUsecase.
func NewExerciseUsecase(users UserFinder, exercises ExerciseRepository) *ExerciseUsecase {
	return &ExerciseUsecase{users: users, exercises: exercises, now: time.Now}
}

// AddExercise validates in, resolves the user and stores the entry.
// The returned id and username belong to the user, not the entry.
func (u *ExerciseUsecase) AddExercise(ctx context.Context, userID string, in entity.EntryInput) (entity.AddedExercise, error) {
	if userID == "" {
		return entity.AddedExercise{}, ErrIDRequired
	}
	valid, err := ValidateEntryInput(in, u.now())
	if err != nil {
		return entity.AddedExercise{}, err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return entity.AddedExercise{}, fmt.Errorf("failed to find user %q: %w", userID, err)
	}

	stored, err := u.exercises.Create(ctx, entity.Exercise{
		UserID:      user.ID,
		Description: valid.Description,
		Duration:    valid.Duration,
		Date:        valid.Date,
	})
	if err != nil {
		return entity.AddedExercise{}, fmt.Errorf("failed to store exercise: %w", err)
	}

	return entity.AddedExercise{
		UserID:      user.ID,
		Username:    user.Username,
		Description: stored.Description,
		Duration:    stored.Duration,
		Date:        stored.Date,
	}, nil
}

// GetLog builds the query (failing fast on bad filters), resolves the user,
// runs the query and assembles the log.
func (u *ExerciseUsecase) GetLog(ctx context.Context, userID string, p entity.LogParams) (entity.Log, error) {
	if userID == "" {
		return entity.Log{}, ErrIDRequired
	}
	q, err := BuildLogQuery(userID, p)
	if err != nil {
		return entity.Log{}, err
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return entity.Log{}, fmt.Errorf("failed to find user %q: %w", userID, err)
	}
	q.UserID = user.ID

	exercises, err := u.exercises.QueryByUser(ctx, q)
	if err != nil {
		return entity.Log{}, fmt.Errorf("failed to query exercises: %w", err)
	}
	return AssembleLog(user, exercises), nil
}
