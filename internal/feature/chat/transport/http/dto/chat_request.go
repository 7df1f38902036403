// Package dto defines the request payloads for the chat feature.
package dto

import "fanbase_backend/internal/feature/chat/domain/entity"

// PartPayload is one text fragment of a history turn.
type PartPayload struct {
	Text string `json:"text" binding:"required"`
}

// TurnPayload is one history entry.
type TurnPayload struct {
	Role  string        `json:"role" binding:"required,oneof=user model"`
	Parts []PartPayload `json:"parts" binding:"required,min=1,dive"`
}

// ChatRequest is the body of POST /chat/send. History is optional and
// caller-managed; the server holds no conversation state.
type ChatRequest struct {
	Message string        `json:"message" binding:"required,min=1,max=300"`
	History []TurnPayload `json:"history" binding:"omitempty,dive"`
}

// HistoryTurns converts the request history to domain turns.
func (r ChatRequest) HistoryTurns() []entity.Turn {
	if len(r.History) == 0 {
		return nil
	}
	turns := make([]entity.Turn, 0, len(r.History))
	for _, t := range r.History {
		parts := make([]entity.Part, 0, len(t.Parts))
		for _, p := range t.Parts {
			parts = append(parts, entity.Part{Text: p.Text})
		}
		turns = append(turns, entity.Turn{Role: t.Role, Parts: parts})
	}
	return turns
}
