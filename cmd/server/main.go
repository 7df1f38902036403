package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"fanbase_backend/internal/app/di"
	"fanbase_backend/internal/app/router"
	chatgemini "fanbase_backend/internal/feature/chat/adapters/gemini"
	chathandler "fanbase_backend/internal/feature/chat/transport/handler"
	chatusecase "fanbase_backend/internal/feature/chat/usecase"
	useradapters "fanbase_backend/internal/feature/user/adapters"
	usergemini "fanbase_backend/internal/feature/user/adapters/gemini"
	userhandler "fanbase_backend/internal/feature/user/transport/handler"
	userusecase "fanbase_backend/internal/feature/user/usecase"
	"fanbase_backend/internal/platform/config"
	infradb "fanbase_backend/internal/platform/db"
	infraredis "fanbase_backend/internal/platform/redis"
	"fanbase_backend/internal/platform/storage"
	"fanbase_backend/internal/platform/validation"
	"fanbase_backend/internal/shared/ratelimiter"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx := context.Background()

	validation.Init()

	// db
	db := infradb.OpenDB(cfg)

	// Redis (optional: the server runs without the read cache)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
		slog.Warn("Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// External collaborators
	gemini, err := di.NewGeminiClient(ctx, cfg.CollaboratorTimeout)
	if err != nil {
		log.Fatalf("gemini client init failed: %v", err)
	}
	docStorage, err := storage.NewGCSDocumentStorage(ctx, cfg.GCSBucket)
	if err != nil {
		log.Fatalf("storage client init failed: %v", err)
	}
	defer func() {
		if err := docStorage.Close(); err != nil {
			slog.Warn("failed to close storage client", "error", err)
		}
	}()

	// Repository
	userRepo := di.NewUserRepository(cfg, rdb, db)

	// Usecase
	userUC := userusecase.NewUserUsecase(
		userRepo,
		docStorage,
		usergemini.NewDocumentGemini(gemini, cfg.GeminiModel),
		useradapters.NewSimulatedSocialMedia(),
		useradapters.NewSimulatedProfileValidator(),
		cfg.CollaboratorTimeout,
	)
	chatUC := chatusecase.NewChatUsecase(chatgemini.NewChatGemini(gemini, cfg.GeminiModel), cfg.CollaboratorTimeout)

	// Handler
	userH := userhandler.NewUserHandler(userUC)
	chatH := chathandler.NewChatHandler(chatUC)

	limiter := ratelimiter.NewLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)

	r := router.NewRouter(cfg, limiter, userH, chatH)

	slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
