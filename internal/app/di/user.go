package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"fanbase_backend/internal/feature/user/adapters"
	"fanbase_backend/internal/feature/user/usecase"
	"fanbase_backend/internal/platform/cache"
	"fanbase_backend/internal/platform/config"
)

// NewUserRepository creates the UserRepository implementation.
// If Redis is available, id lookups are served through the caching
// decorator. Otherwise the plain PostgreSQL repository is used.
func NewUserRepository(cfg *config.Config, rdb *redis.Client, db *gorm.DB) usecase.UserRepository {
	repo := adapters.NewUserPostgres(db)
	if rdb != nil {
		return cache.NewCachingUserRepository(rdb, cfg.UserCacheTTL, repo, "users")
	}
	return repo
}
