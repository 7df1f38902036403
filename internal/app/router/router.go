// Package router builds the HTTP routing tree and global middleware.
package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fanbase_backend/internal/api"
	chathandler "fanbase_backend/internal/feature/chat/transport/handler"
	userhandler "fanbase_backend/internal/feature/user/transport/handler"
	"fanbase_backend/internal/platform/config"
	platformhandler "fanbase_backend/internal/platform/http/handler"
	"fanbase_backend/internal/shared/ratelimiter"
)

// NewRouter wires the global middleware chain (CORS, rate limiting,
// panic recovery) and the route table.
func NewRouter(cfg *config.Config, limiter *ratelimiter.Limiter,
	users *userhandler.UserHandler, chat *chathandler.ChatHandler) *gin.Engine {
	r := gin.New()

	// Anything a handler failed to catch becomes a plain 500; internal
	// detail is only exposed in development.
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("unhandled panic", "error", recovered, "path", c.Request.URL.Path)
		if cfg.IsDevelopment() {
			api.ServerError(c, "Ocorreu um erro inesperado", gin.H{"error": recovered})
			return
		}
		api.ServerError(c, "Ocorreu um erro inesperado", nil)
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(limiter.Middleware())

	r.GET("/healthz", platformhandler.Health)

	r.POST("/chat/send", chat.Send)

	u := r.Group("/users")
	{
		u.POST("", users.Create)
		u.GET("/:id", users.GetByID)
		u.PUT("/:id", users.Update)
		u.DELETE("/:id", users.Delete)

		// Enrichment flows
		u.POST("/:id/document", users.UploadDocument)
		u.POST("/:id/social-media", users.ConnectSocialMedia)
		u.POST("/:id/esports-profile", users.ValidateEsportsProfile)
	}

	return r
}
