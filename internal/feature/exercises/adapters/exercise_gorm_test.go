package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	"exercise_tracker/internal/platform/apperr"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&ExerciseModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

// seedExercises inserts entries for user u1 on Jan 3, 5, 5, 9 and one for u2.
func seedExercises(t *testing.T, repo *exerciseGorm) {
	t.Helper()

	seed := []entity.Exercise{
		{UserID: "u1", Description: "late", Duration: 10, Date: day(2023, time.January, 9)},
		{UserID: "u1", Description: "first-on-5th", Duration: 20, Date: day(2023, time.January, 5)},
		{UserID: "u1", Description: "early", Duration: 30, Date: day(2023, time.January, 3)},
		{UserID: "u1", Description: "second-on-5th", Duration: 40, Date: day(2023, time.January, 5)},
		{UserID: "u2", Description: "other user", Duration: 50, Date: day(2023, time.January, 4)},
	}
	for _, e := range seed {
		_, err := repo.Create(context.Background(), e)
		require.NoError(t, err)
	}
}

func descriptions(es []entity.Exercise) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Description)
	}
	return out
}

func TestNewExerciseRepository(t *testing.T) {
	repo := NewExerciseRepository(setupTestDB(t))

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestExerciseGorm_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: round-trips fields", func(t *testing.T) {
		repo := NewExerciseRepository(setupTestDB(t))

		in := entity.Exercise{UserID: "u1", Description: "run", Duration: 30, Date: day(2023, time.January, 5)}
		got, err := repo.Create(ctx, in)
		require.NoError(t, err)

		assert.NotEmpty(t, got.ID)
		in.ID = got.ID
		assert.Equal(t, in, got)

		stored, err := repo.QueryByUser(ctx, entity.LogQuery{UserID: "u1"})
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, in, stored[0])
	})

	t.Run("failure: duration below minimum", func(t *testing.T) {
		repo := NewExerciseRepository(setupTestDB(t))

		_, err := repo.Create(ctx, entity.Exercise{UserID: "u1", Description: "rest", Duration: 0, Date: day(2023, time.January, 5)})
		var cerr *apperr.ConstraintError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "duration", cerr.Field)

		stored, err := repo.QueryByUser(ctx, entity.LogQuery{UserID: "u1"})
		require.NoError(t, err)
		assert.Empty(t, stored, "rejected entry must not be stored")
	})

	t.Run("failure: missing description", func(t *testing.T) {
		repo := NewExerciseRepository(setupTestDB(t))

		_, err := repo.Create(ctx, entity.Exercise{UserID: "u1", Duration: 5, Date: day(2023, time.January, 5)})
		var cerr *apperr.ConstraintError
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "description", cerr.Field)
	})
}

func TestExerciseGorm_QueryByUser(t *testing.T) {
	ctx := context.Background()
	repo := NewExerciseRepository(setupTestDB(t))
	seedExercises(t, repo)

	tests := []struct {
		name  string
		query entity.LogQuery
		want  []string
	}{
		{
			name:  "all entries ascending with ties in insertion order",
			query: entity.LogQuery{UserID: "u1"},
			want:  []string{"early", "first-on-5th", "second-on-5th", "late"},
		},
		{
			name:  "limit takes the earliest entries",
			query: entity.LogQuery{UserID: "u1", Limit: 2},
			want:  []string{"early", "first-on-5th"},
		},
		{
			name:  "limit of one keeps only the earliest entry",
			query: entity.LogQuery{UserID: "u1", Limit: 1},
			want:  []string{"early"},
		},
		{
			name:  "inclusive range",
			query: entity.LogQuery{UserID: "u1", Range: entity.DateRange{From: ptr(day(2023, time.January, 5)), To: ptr(day(2023, time.January, 9))}},
			want:  []string{"first-on-5th", "second-on-5th", "late"},
		},
		{
			name:  "lower bound only",
			query: entity.LogQuery{UserID: "u1", Range: entity.DateRange{From: ptr(day(2023, time.January, 6))}},
			want:  []string{"late"},
		},
		{
			name:  "upper bound only",
			query: entity.LogQuery{UserID: "u1", Range: entity.DateRange{To: ptr(day(2023, time.January, 4))}},
			want:  []string{"early"},
		},
		{
			name:  "range and limit combined",
			query: entity.LogQuery{UserID: "u1", Range: entity.DateRange{From: ptr(day(2023, time.January, 4))}, Limit: 1},
			want:  []string{"first-on-5th"},
		},
		{
			name:  "empty range",
			query: entity.LogQuery{UserID: "u1", Range: entity.DateRange{From: ptr(day(2024, time.January, 1))}},
			want:  []string{},
		},
		{
			name:  "unknown user",
			query: entity.LogQuery{UserID: "nobody"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.QueryByUser(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, descriptions(got))
		})
	}
}
