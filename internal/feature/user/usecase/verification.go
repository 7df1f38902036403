package usecase

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"fanbase_backend/internal/feature/user/domain/entity"
)

// verificationPromptTemplate instructs the model to answer with a strict
// JSON object only, so the reply can be unmarshalled directly.
const verificationPromptTemplate = `Analyze this %s document:
- Check if the name %q appears on the document
- Check if the document number %q appears on the document
- Verify if the document appears to be authentic

Return only a JSON object with the following structure:
{
  "nameMatch": true/false,
  "numberMatch": true/false,
  "appearsToBeLegitimate": true/false,
  "confidence": 0.0-1.0
}`

// buildVerificationPrompt renders the verification prompt for a document.
func buildVerificationPrompt(docType, docNumber, userName string) string {
	return fmt.Sprintf(verificationPromptTemplate, docType, userName, docNumber)
}

// parseVerificationReply extracts the JSON object from the model reply.
// Models occasionally wrap the object in markdown fences or prose, so the
// outermost braces delimit what gets unmarshalled.
func parseVerificationReply(reply string) (entity.VerificationDetails, error) {
	var details entity.VerificationDetails

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return details, fmt.Errorf("no JSON object in verification reply")
	}

	if err := json.Unmarshal([]byte(reply[start:end+1]), &details); err != nil {
		return details, fmt.Errorf("failed to decode verification reply: %w", err)
	}
	details.Source = entity.VerificationSourceGemini
	return details, nil
}

// simulatedVerification produces the placeholder result used when the AI
// collaborator is unavailable. It is biased towards success (the same odds
// the original demo used) and always tagged as simulated.
func simulatedVerification() entity.VerificationDetails {
	return entity.VerificationDetails{
		NameMatch:             rand.Float64() > 0.2,
		NumberMatch:           rand.Float64() > 0.2,
		AppearsToBeLegitimate: rand.Float64() > 0.1,
		Confidence:            0.7 + rand.Float64()*0.3,
		Source:                entity.VerificationSourceSimulated,
	}
}
