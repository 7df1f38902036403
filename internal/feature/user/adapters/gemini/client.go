// Package gemini provides the Gemini-backed document analyzer for the
// user feature.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"fanbase_backend/internal/feature/user/usecase"
)

// DocumentGemini sends document images to the Gemini API for analysis.
type DocumentGemini struct {
	client *genai.Client
	model  string
}

// Compile-time check that DocumentGemini implements DocumentAnalyzer.
var _ usecase.DocumentAnalyzer = (*DocumentGemini)(nil)

// NewDocumentGemini creates a new DocumentGemini using a shared genai
// client and the configured model name.
func NewDocumentGemini(client *genai.Client, model string) *DocumentGemini {
	return &DocumentGemini{client: client, model: model}
}

// Analyze sends the prompt and the inline image bytes to the model and
// returns the raw text reply.
func (g *DocumentGemini) Analyze(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}
	return resp.Text(), nil
}
