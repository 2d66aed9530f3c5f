package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"exercise_tracker/internal/app/di"
	"exercise_tracker/internal/app/router"
	exercisehandler "exercise_tracker/internal/feature/exercises/transport/handler"
	exerciseusecase "exercise_tracker/internal/feature/exercises/usecase"
	userhandler "exercise_tracker/internal/feature/users/transport/handler"
	userusecase "exercise_tracker/internal/feature/users/usecase"
	"exercise_tracker/internal/platform/config"
	healthhandler "exercise_tracker/internal/platform/http/handler"
	"exercise_tracker/internal/platform/http/middleware"
	"exercise_tracker/internal/platform/logger"
	infraredis "exercise_tracker/internal/platform/redis"
)

const prunerInterval = 5 * time.Minute

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// store
	stores, err := di.OpenStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			slog.Error("failed to close store", "error", err)
		}
	}()

	checks := map[string]healthhandler.Check{"store": stores.Ping}

	// Redis
	var rdb *redisv9.Client
	if cfg.Cache.RedisURL != "" {
		if tmp, err := infraredis.NewRedisClient(ctx, cfg.Cache.RedisURL); err != nil {
			slog.Warn("Redis unavailable. Running without cache.", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close Redis client", "error", err)
				}
			}()
			checks["cache"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}
	stores.WithCache(rdb, cfg.Cache.TTL)

	// Usecase
	userUC := userusecase.NewUserUsecase(stores.Users)
	exerciseUC := exerciseusecase.NewExerciseUsecase(stores.Users, stores.Exercises)

	// Handler
	handlers := router.Handlers{
		Users:     userhandler.NewUserHandler(userUC),
		Exercises: exercisehandler.NewExerciseHandler(exerciseUC),
		Health:    healthhandler.Health(checks),
	}

	opts := router.Options{
		Logger:    log,
		StaticDir: cfg.HTTP.StaticDir,
		ViewsDir:  cfg.HTTP.ViewsDir,
	}
	if cfg.RateLimit.RPS > 0 {
		opts.Limiter = middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		go opts.Limiter.RunPruner(prunerInterval, ctx.Done())
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.NewRouter(handlers, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Your app is listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
