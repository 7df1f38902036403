// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment
// variables, with sane defaults for local development.
type Config struct {
	Env     string // development or production
	Port    string
	GinMode string

	// Database
	DBConnectionString string
	RunMigrations      bool

	// Redis (optional read cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	UserCacheTTL  time.Duration

	// Google Cloud Storage
	GCSBucket string

	// Gemini
	GeminiModel string

	// External collaborator call timeout (storage, generative AI)
	CollaboratorTimeout time.Duration

	// CORS
	CORSAllowedOrigins string // comma-separated

	// Rate limiting
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Env:     getEnv("APP_ENV", "development"),
		Port:    getEnv("PORT", "3001"),
		GinMode: getEnv("GIN_MODE", ""),

		DBConnectionString: os.Getenv("DB_CONNECTION_STRING"),
		RunMigrations:      getEnv("RUN_MIGRATIONS", "") == "true",

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		UserCacheTTL:  getEnvDuration("USER_CACHE_TTL", 5*time.Minute),

		GCSBucket: getEnv("GCS_BUCKET", "fanbase-documents"),

		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		CollaboratorTimeout: getEnvDuration("COLLABORATOR_TIMEOUT", 30*time.Second),

		CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),

		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
	}
}

// CORSOrigins returns the configured origin allowlist.
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

// IsDevelopment reports whether the app runs in development mode.
// Internal error details are only exposed in development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
