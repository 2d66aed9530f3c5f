// Package usecase implements the registration and lookup flows of the users feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"exercise_tracker/internal/feature/users/domain"
	"exercise_tracker/internal/feature/users/domain/entity"
)

// UserRepository abstracts the identity store.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create inserts a new user. It returns domain.ErrUsernameTaken when the
	// username already exists, which the store enforces with a unique index.
	Create(ctx context.Context, username string) (entity.User, error)

	// FindByUsername returns domain.ErrUserNotFound on a miss.
	FindByUsername(ctx context.Context, username string) (entity.User, error)

	// FindByID returns domain.ErrUserNotFound on a miss or a malformed id.
	FindByID(ctx context.Context, id string) (entity.User, error)

	// ListAll yields every user lazily, in insertion order.
	ListAll(ctx context.Context) iter.Seq2[entity.User, error]
}

// UserUsecase provides the register and list flows.
type UserUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(users UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

// Register validates the username, checks that it is free and inserts it.
// The lookup only short-circuits the common duplicate case; two concurrent
// registrations of the same name are settled by the store's unique index,
// which surfaces as the same domain.ErrUsernameTaken.
func (u *UserUsecase) Register(ctx context.Context, username string) (entity.User, error) {
	username, err := ValidateUsername(username)
	if err != nil {
		return entity.User{}, err
	}

	_, err = u.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return entity.User{}, domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return entity.User{}, fmt.Errorf("failed to look up username: %w", err)
	}

	user, err := u.users.Create(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			return entity.User{}, err
		}
		return entity.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// ListUsers returns every registered user in insertion order.
func (u *UserUsecase) ListUsers(ctx context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0)
	for user, err := range u.users.ListAll(ctx) {
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		out = append(out, user)
	}
	return out, nil
}
