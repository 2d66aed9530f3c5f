// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"exercise_tracker/internal/feature/exercises/domain/entity"
	"exercise_tracker/internal/feature/exercises/usecase"
)

const keyDateLayout = "2006-01-02"

// CachingExerciseRepository decorates an ExerciseRepository with Redis caching.
// Log queries are cached per user under a generation number that every
// append bumps, so a result computed before an append is never served after
// it. Superseded keys are deleted on append and otherwise expire with the TTL.
type CachingExerciseRepository struct {
	inner     usecase.ExerciseRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.ExerciseRepository = (*CachingExerciseRepository)(nil)

// NewCachingExerciseRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "exercises".
// A nil rdb disables caching.
func NewCachingExerciseRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ExerciseRepository, namespace string) *CachingExerciseRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "exercises"
	}
	return &CachingExerciseRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create stores the entry, then bumps the user's generation and drops the
// user's cached queries.
func (c *CachingExerciseRepository) Create(ctx context.Context, e entity.Exercise) (entity.Exercise, error) {
	out, err := c.inner.Create(ctx, e)
	if err != nil {
		return entity.Exercise{}, err
	}
	if c.rdb == nil {
		return out, nil
	}
	// Best effort: a failed invalidation only leaves entries until the TTL expires
	_ = c.rdb.Incr(ctx, c.generationKey(e.UserID)).Err()
	_ = deleteByPattern(ctx, c.rdb, c.userPrefix(e.UserID)+"*")
	return out, nil
}

// QueryByUser checks the cache first, then falls back to the inner store.
// The generation is read before the store, so a result that races an append
// is written under the superseded generation and never read.
func (c *CachingExerciseRepository) QueryByUser(ctx context.Context, q entity.LogQuery) ([]entity.Exercise, error) {
	if c.rdb == nil {
		return c.inner.QueryByUser(ctx, q)
	}

	gen, err := c.generation(ctx, q.UserID)
	if err != nil {
		return c.inner.QueryByUser(ctx, q)
	}
	key := c.cacheKey(q, gen)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Exercise
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := c.inner.QueryByUser(ctx, q)
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

// generation returns the user's current generation; 0 before the first append.
func (c *CachingExerciseRepository) generation(ctx context.Context, userID string) (int64, error) {
	gen, err := c.rdb.Get(ctx, c.generationKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// cacheKey renders q as namespace:user:g<gen>:from:to:limit. Absent bounds
// are "-" and every unbounded limit is 0.
func (c *CachingExerciseRepository) cacheKey(q entity.LogQuery, gen int64) string {
	limit := 0
	if q.Bounded() {
		limit = q.Limit
	}
	return fmt.Sprintf("%sg%d:%s:%s:%d", c.userPrefix(q.UserID), gen, bound(q.Range.From), bound(q.Range.To), limit)
}

// generationKey has no trailing separator, so userPrefix patterns never match it.
func (c *CachingExerciseRepository) generationKey(userID string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(userID))
}

func (c *CachingExerciseRepository) userPrefix(userID string) string {
	return c.generationKey(userID) + ":"
}

func bound(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format(keyDateLayout)
}
