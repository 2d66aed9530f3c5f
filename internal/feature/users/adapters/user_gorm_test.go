package adapters

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"exercise_tracker/internal/feature/users/domain"
	"exercise_tracker/internal/feature/users/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&UserModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func collect(t *testing.T, repo *userGorm) []entity.User {
	t.Helper()

	var out []entity.User
	for u, err := range repo.ListAll(context.Background()) {
		require.NoError(t, err)
		out = append(out, u)
	}
	return out
}

func TestNewUserRepository(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserRepository(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserGorm_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success: assigns an id", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		u, err := repo.Create(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, "1", u.ID)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("failure: duplicate username", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		_, err := repo.Create(ctx, "alice")
		require.NoError(t, err)

		_, err = repo.Create(ctx, "alice")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("success: usernames are case-sensitive", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		_, err := repo.Create(ctx, "alice")
		require.NoError(t, err)

		u, err := repo.Create(ctx, "Alice")
		require.NoError(t, err)
		assert.Equal(t, "Alice", u.Username)
	})
}

func TestUserGorm_FindByUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	created, err := repo.Create(ctx, "bob")
	require.NoError(t, err)

	got, err := repo.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserGorm_FindByID(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(setupTestDB(t))

	created, err := repo.Create(ctx, "carol")
	require.NoError(t, err)

	tests := []struct {
		name    string
		id      string
		want    entity.User
		wantErr error
	}{
		{name: "success: existing id", id: created.ID, want: created},
		{name: "failure: unknown id", id: "999", wantErr: domain.ErrUserNotFound},
		{name: "failure: non-numeric id", id: "abc", wantErr: domain.ErrUserNotFound},
		{name: "failure: zero id", id: "0", wantErr: domain.ErrUserNotFound},
		{name: "failure: negative id", id: "-1", wantErr: domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.FindByID(ctx, tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUserGorm_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: empty store", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		assert.Empty(t, collect(t, repo))
	})

	t.Run("success: insertion order across batches", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		names := make([]string, 0, listBatchSize+5)
		for i := 0; i < listBatchSize+5; i++ {
			name := fmt.Sprintf("user-%03d", i)
			names = append(names, name)
			_, err := repo.Create(ctx, name)
			require.NoError(t, err)
		}

		got := collect(t, repo)
		require.Len(t, got, len(names))
		for i, u := range got {
			assert.Equal(t, names[i], u.Username)
		}
	})

	t.Run("success: consumer can stop early", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		for _, name := range []string{"a", "b", "c"} {
			_, err := repo.Create(ctx, name)
			require.NoError(t, err)
		}

		var seen []string
		for u, err := range repo.ListAll(ctx) {
			require.NoError(t, err)
			seen = append(seen, u.Username)
			if len(seen) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"a", "b"}, seen)
	})
}

func TestIsDuplicate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "translated gorm error", err: gorm.ErrDuplicatedKey, want: true},
		{name: "sqlite message", err: assertErr("UNIQUE constraint failed: users.username"), want: true},
		{name: "postgres message", err: assertErr(`ERROR: duplicate key value violates unique constraint "idx_users_username"`), want: true},
		{name: "other error", err: gorm.ErrRecordNotFound, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDuplicate(tt.err))
		})
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
