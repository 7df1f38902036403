// Package entity defines the domain types for the chat feature.
package entity

// Conversation roles accepted in a chat history.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Part is one text fragment of a conversation turn.
type Part struct {
	Text string `json:"text"`
}

// Turn is one entry of the caller-managed conversation history.
type Turn struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

// TextTurn builds a single-part turn.
func TextTurn(role, text string) Turn {
	return Turn{Role: role, Parts: []Part{{Text: text}}}
}
