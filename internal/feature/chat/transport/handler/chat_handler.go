// Package handler provides the HTTP handler for the chat feature.
package handler

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"fanbase_backend/internal/api"
	"fanbase_backend/internal/feature/chat/domain/entity"
	"fanbase_backend/internal/feature/chat/transport/http/dto"
	"fanbase_backend/internal/platform/validation"
)

// ChatUsecase defines the chat operation the handler depends on.
type ChatUsecase interface {
	Send(ctx context.Context, message string, history []entity.Turn) (string, []entity.Turn, error)
}

// ChatHandler handles HTTP requests for the chat endpoint.
type ChatHandler struct {
	chat ChatUsecase
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chat ChatUsecase) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Send handles POST /chat/send. The reply and the extended history are
// returned to the caller, who must resend the full history next time.
func (h *ChatHandler) Send(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Validation error", gin.H{"error": validation.Format(err)})
		return
	}

	text, history, err := h.chat.Send(c.Request.Context(), req.Message, req.HistoryTurns())
	if err != nil {
		slog.Error("chat generation failed", "error", err)
		api.ServerError(c, "Error generating response", nil)
		return
	}

	api.Success(c, "", gin.H{"response": text, "history": history})
}
