// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fanbase_backend/internal/feature/user/domain/entity"
	"fanbase_backend/internal/feature/user/usecase"
)

// CachingUserRepository decorates a UserRepository with Redis caching of
// id lookups. It implements the decorator pattern, transparently adding
// caching without modifying the underlying repository. Every write
// invalidates the cached record so reads never observe stale data.
type CachingUserRepository struct {
	inner     usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that CachingUserRepository implements UserRepository.
var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses
// "users". A nil Redis client disables caching entirely.
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

// Create persists the user and drops any cached entry for its id.
func (c *CachingUserRepository) Create(ctx context.Context, u *entity.User) error {
	if err := c.inner.Create(ctx, u); err != nil {
		return err
	}
	c.invalidate(ctx, u.ID)
	return nil
}

// FindByID retrieves a user, checking the cache first then falling back
// to the database.
func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var u entity.User
		if err := json.Unmarshal(b, &u); err == nil {
			return &u, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	u, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Store in cache (best effort)
	if b, err := json.Marshal(u); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return u, nil
}

// FindByEmailOrCPF always goes to the database: the lookup backs the
// duplicate check on create and must never observe stale data.
func (c *CachingUserRepository) FindByEmailOrCPF(ctx context.Context, email, cpf string) (*entity.User, error) {
	return c.inner.FindByEmailOrCPF(ctx, email, cpf)
}

// UpdateWithLock forwards the locked read-modify-write and invalidates
// the cached record.
func (c *CachingUserRepository) UpdateWithLock(ctx context.Context, id string, mutate func(*entity.User) error) (*entity.User, error) {
	u, err := c.inner.UpdateWithLock(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, id)
	return u, nil
}

// Delete removes the user and its cached entry.
func (c *CachingUserRepository) Delete(ctx context.Context, id string) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// invalidate drops the cached record for id (best effort).
func (c *CachingUserRepository) invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, c.cacheKey(id)).Err()
}

// cacheKey generates the cache key for a user id.
func (c *CachingUserRepository) cacheKey(id string) string {
	return fmt.Sprintf("%s:%s", c.namespace, id)
}
