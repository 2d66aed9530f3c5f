package adapters

import (
	"context"
	"errors"
	"iter"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"exercise_tracker/internal/feature/users/domain"
	"exercise_tracker/internal/feature/users/domain/entity"
	"exercise_tracker/internal/feature/users/usecase"
)

// listBatchSize bounds how many rows ListAll holds in memory at once.
const listBatchSize = 200

var errStopIteration = errors.New("iteration stopped by consumer")

type userGorm struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository returns a GORM-backed UserRepository.
// The database should be opened with gorm.Config{TranslateError: true} so
// duplicate-key failures arrive as gorm.ErrDuplicatedKey.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// UserModel is the persistence model for the users table.
type UserModel struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:255;not null;uniqueIndex:idx_users_username"`
	CreatedAt time.Time
}

func (UserModel) TableName() string {
	return "users"
}

func toEntity(m UserModel) entity.User {
	return entity.User{
		ID:       strconv.FormatUint(uint64(m.ID), 10),
		Username: m.Username,
	}
}

func (r *userGorm) Create(ctx context.Context, username string) (entity.User, error) {
	m := UserModel{Username: username}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDuplicate(err) {
			return entity.User{}, domain.ErrUsernameTaken
		}
		return entity.User{}, err
	}
	return toEntity(m), nil
}

func (r *userGorm) FindByUsername(ctx context.Context, username string) (entity.User, error) {
	var m UserModel
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.User{}, domain.ErrUserNotFound
		}
		return entity.User{}, err
	}
	return toEntity(m), nil
}

func (r *userGorm) FindByID(ctx context.Context, id string) (entity.User, error) {
	key, err := strconv.ParseUint(id, 10, 64)
	if err != nil || key == 0 {
		return entity.User{}, domain.ErrUserNotFound
	}

	var m UserModel
	if err := r.db.WithContext(ctx).First(&m, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.User{}, domain.ErrUserNotFound
		}
		return entity.User{}, err
	}
	return toEntity(m), nil
}

// ListAll pages through the table by primary key, which is insertion order
// for an auto-increment key.
func (r *userGorm) ListAll(ctx context.Context) iter.Seq2[entity.User, error] {
	return func(yield func(entity.User, error) bool) {
		var batch []UserModel
		stopped := false
		err := r.db.WithContext(ctx).FindInBatches(&batch, listBatchSize, func(tx *gorm.DB, _ int) error {
			for _, m := range batch {
				if !yield(toEntity(m), nil) {
					stopped = true
					return errStopIteration
				}
			}
			return nil
		}).Error
		if err != nil && !stopped {
			yield(entity.User{}, err)
		}
	}
}

// isDuplicate reports whether err is a unique-constraint violation.
// The message check covers dialects without an error translator.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
