// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	exerciseadapters "exercise_tracker/internal/feature/exercises/adapters"
	exerciseusecase "exercise_tracker/internal/feature/exercises/usecase"
	useradapters "exercise_tracker/internal/feature/users/adapters"
	userusecase "exercise_tracker/internal/feature/users/usecase"
	"exercise_tracker/internal/platform/cache"
	"exercise_tracker/internal/platform/config"
	"exercise_tracker/internal/platform/db"
	platformmongo "exercise_tracker/internal/platform/mongo"
)

const (
	// defaultDatabase is used when a MongoDB URI names no database.
	defaultDatabase = "exercisetracker"
	connectTimeout  = 60 * time.Second
)

// ErrUnsupportedStore is returned when STORE_URI matches no backend.
var ErrUnsupportedStore = errors.New("unsupported STORE_URI scheme")

// Stores holds the repositories backing both features and the lifecycle
// hooks of the connection behind them.
type Stores struct {
	Users     userusecase.UserRepository
	Exercises exerciseusecase.ExerciseRepository

	// Ping checks that the backend is reachable.
	Ping func(ctx context.Context) error
	// Close releases the connection. It is safe to call once.
	Close func(ctx context.Context) error
}

// OpenStores connects to the backend selected by cfg.StoreURI: MongoDB for
// mongodb:// and mongodb+srv://, GORM for postgres://, sqlite:// and file:.
// With cfg.RunMigrations the schema (tables or indexes) is created first.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch {
	case platformmongo.IsMongoURI(cfg.StoreURI):
		return openMongoStores(ctx, cfg)
	case db.IsSQLURI(cfg.StoreURI):
		return openGormStores(cfg)
	}
	return nil, ErrUnsupportedStore
}

func openGormStores(cfg *config.Config) (*Stores, error) {
	gdb, err := db.Open(cfg.StoreURI, connectTimeout)
	if err != nil {
		return nil, err
	}
	if cfg.RunMigrations {
		if err := db.Migrate(gdb, &useradapters.UserModel{}, &exerciseadapters.ExerciseModel{}); err != nil {
			_ = db.Close(gdb)
			return nil, err
		}
	}

	slog.Info("using relational store", "dialect", gdb.Dialector.Name())
	return &Stores{
		Users:     useradapters.NewUserRepository(gdb),
		Exercises: exerciseadapters.NewExerciseRepository(gdb),
		Ping: func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		Close: func(context.Context) error { return db.Close(gdb) },
	}, nil
}

func openMongoStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	name, err := platformmongo.DatabaseName(cfg.StoreURI, defaultDatabase)
	if err != nil {
		return nil, err
	}
	client, err := platformmongo.Connect(ctx, cfg.StoreURI)
	if err != nil {
		return nil, err
	}
	database := client.Database(name)

	users := useradapters.NewUserMongoRepository(database)
	exercises := exerciseadapters.NewExerciseMongoRepository(database)
	if cfg.RunMigrations {
		if err := users.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to create user indexes: %w", err)
		}
		if err := exercises.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("failed to create exercise indexes: %w", err)
		}
	}

	slog.Info("using document store", "database", name)
	return &Stores{
		Users:     users,
		Exercises: exercises,
		Ping:      func(ctx context.Context) error { return platformmongo.Ping(ctx, client) },
		Close:     client.Disconnect,
	}, nil
}

// WithCache wraps both repositories with Redis read-through caches.
// A nil rdb leaves the stores unchanged.
func (s *Stores) WithCache(rdb *redis.Client, ttl time.Duration) {
	if rdb == nil {
		return
	}
	s.Users = cache.NewCachingUserRepository(rdb, ttl, s.Users, "users")
	s.Exercises = cache.NewCachingExerciseRepository(rdb, ttl, s.Exercises, "exercises")
}
