package di

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	"exercise_tracker/internal/platform/cache"
	"exercise_tracker/internal/platform/config"
)

func testConfig(t *testing.T, uri string) *config.Config {
	t.Helper()

	cfg, err := config.LoadFromMap(map[string]string{"STORE_URI": uri})
	require.NoError(t, err)
	return cfg
}

func TestOpenStores_SQLite(t *testing.T) {
	ctx := context.Background()

	stores, err := OpenStores(ctx, testConfig(t, "sqlite://:memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.Close(ctx) })

	require.NoError(t, stores.Ping(ctx))

	user, err := stores.Users.Create(ctx, "alice")
	require.NoError(t, err)

	_, err = stores.Exercises.Create(ctx, entity.Exercise{
		UserID:      user.ID,
		Description: "run",
		Duration:    30,
		Date:        time.Date(2023, time.January, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	got, err := stores.Exercises.QueryByUser(ctx, entity.LogQuery{UserID: user.ID})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestOpenStores_Unsupported(t *testing.T) {
	_, err := OpenStores(context.Background(), testConfig(t, "redis://localhost:6379"))
	assert.ErrorIs(t, err, ErrUnsupportedStore)
}

func TestStores_WithCache(t *testing.T) {
	ctx := context.Background()

	stores, err := OpenStores(ctx, testConfig(t, "sqlite://:memory:"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = stores.Close(ctx) })

	users, exercises := stores.Users, stores.Exercises
	stores.WithCache(nil, time.Minute)
	assert.Same(t, users, stores.Users, "nil redis keeps the plain repositories")
	assert.Same(t, exercises, stores.Exercises)

	rdb, _ := redismock.NewClientMock()
	t.Cleanup(func() { _ = rdb.Close() })
	stores.WithCache(rdb, time.Minute)
	assert.IsType(t, &cache.CachingUserRepository{}, stores.Users)
	assert.IsType(t, &cache.CachingExerciseRepository{}, stores.Exercises)
}
