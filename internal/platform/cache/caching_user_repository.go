package cache

import (
	"context"
	"encoding/json"
	"iter"
	"time"

	"github.com/redis/go-redis/v9"

	"exercise_tracker/internal/feature/users/domain/entity"
	"exercise_tracker/internal/feature/users/usecase"
)

// CachingUserRepository caches FindByID hits. Users are immutable, so
// entries are never invalidated. Misses are not cached.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates inner with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingUserRepository) Create(ctx context.Context, username string) (entity.User, error) {
	return c.inner.Create(ctx, username)
}

func (c *CachingUserRepository) FindByUsername(ctx context.Context, username string) (entity.User, error) {
	return c.inner.FindByUsername(ctx, username)
}

func (c *CachingUserRepository) ListAll(ctx context.Context) iter.Seq2[entity.User, error] {
	return c.inner.ListAll(ctx)
}

// FindByID checks the cache first, then falls back to the inner store.
func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.namespace + ":id:" + safe(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return u, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return entity.User{}, err
	}

	if b, err := json.Marshal(u); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return u, nil
}
