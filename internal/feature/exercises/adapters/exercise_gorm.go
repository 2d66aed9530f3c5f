package adapters

import (
	"context"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	"exercise_tracker/internal/feature/exercises/usecase"
)

type exerciseGorm struct {
	db *gorm.DB
}

var _ usecase.ExerciseRepository = (*exerciseGorm)(nil)

// NewExerciseRepository returns a GORM-backed ExerciseRepository.
func NewExerciseRepository(db *gorm.DB) *exerciseGorm {
	return &exerciseGorm{db: db}
}

// ExerciseModel is the persistence model for the exercises table.
// user_id is a plain column; the append flow checks that the user exists.
type ExerciseModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      string    `gorm:"size:64;not null;index:idx_exercises_user_date,priority:1"`
	Description string    `gorm:"not null"`
	Duration    int       `gorm:"not null;check:chk_exercises_duration,duration >= 1"`
	Date        time.Time `gorm:"not null;index:idx_exercises_user_date,priority:2"`
	CreatedAt   time.Time
}

func (ExerciseModel) TableName() string {
	return "exercises"
}

// BeforeCreate runs the schema check so violations surface as
// *apperr.ConstraintError instead of a driver-specific CHECK failure.
func (m *ExerciseModel) BeforeCreate(_ *gorm.DB) error {
	return checkSchema(m.toEntity())
}

func toModel(e entity.Exercise) ExerciseModel {
	return ExerciseModel{
		UserID:      e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date.UTC(),
	}
}

func (m ExerciseModel) toEntity() entity.Exercise {
	id := ""
	if m.ID != 0 {
		id = strconv.FormatUint(uint64(m.ID), 10)
	}
	return entity.Exercise{
		ID:          id,
		UserID:      m.UserID,
		Description: m.Description,
		Duration:    m.Duration,
		Date:        m.Date.UTC(),
	}
}

func (r *exerciseGorm) Create(ctx context.Context, e entity.Exercise) (entity.Exercise, error) {
	m := toModel(e)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entity.Exercise{}, err
	}
	return m.toEntity(), nil
}

func (r *exerciseGorm) QueryByUser(ctx context.Context, q entity.LogQuery) ([]entity.Exercise, error) {
	date := clause.Column{Name: "date"}

	tx := r.db.WithContext(ctx).Where("user_id = ?", q.UserID)
	if q.Range.From != nil {
		tx = tx.Where(clause.Gte{Column: date, Value: q.Range.From.UTC()})
	}
	if q.Range.To != nil {
		tx = tx.Where(clause.Lte{Column: date, Value: q.Range.To.UTC()})
	}
	tx = tx.Order(clause.OrderByColumn{Column: date}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	if q.Bounded() {
		tx = tx.Limit(q.Limit)
	}

	var rows []ExerciseModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Exercise, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.toEntity())
	}
	return out, nil
}
