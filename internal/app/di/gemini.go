// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	infrahttp "fanbase_backend/internal/platform/http"
)

// NewGeminiClient creates the shared genai client used by the chat and
// document-verification adapters. Credentials come from the environment
// (GEMINI_API_KEY, or the Vertex AI variables with ADC); the HTTP client
// carries an explicit timeout so collaborator calls stay bounded.
func NewGeminiClient(ctx context.Context, timeout time.Duration) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPClient: infrahttp.NewHTTPClient(timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}
