// Package gemini provides the Gemini-backed response generator for the
// chat feature.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"fanbase_backend/internal/feature/chat/domain/entity"
	"fanbase_backend/internal/feature/chat/usecase"
)

// ChatGemini generates chat completions through the Gemini API.
type ChatGemini struct {
	client *genai.Client
	model  string
}

// Compile-time check that ChatGemini implements ResponseGenerator.
var _ usecase.ResponseGenerator = (*ChatGemini)(nil)

// NewChatGemini creates a new ChatGemini using a shared genai client and
// the configured model name.
func NewChatGemini(client *genai.Client, model string) *ChatGemini {
	return &ChatGemini{client: client, model: model}
}

// Generate sends the conversation turns to the model and returns the
// reply text, or "" when the model produced no candidate.
func (g *ChatGemini) Generate(ctx context.Context, turns []entity.Turn) (string, error) {
	contents := make([]*genai.Content, 0, len(turns))
	for _, t := range turns {
		parts := make([]*genai.Part, 0, len(t.Parts))
		for _, p := range t.Parts {
			parts = append(parts, genai.NewPartFromText(p.Text))
		}
		contents = append(contents, genai.NewContentFromParts(parts, genai.Role(t.Role)))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
