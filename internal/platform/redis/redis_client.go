// Package redis creates the Redis client used for the user read cache.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"fanbase_backend/internal/platform/config"
)

// NewRedisClient connects to Redis and verifies the connection with a
// ping. Callers treat a nil client as "run without cache".
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", cfg.RedisAddr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", cfg.RedisAddr)
	return rdb, nil
}
