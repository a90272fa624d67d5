package ai

import (
	"context"
)

// Role values for conversation history entries. Only user and assistant turns
// are ever sent to the model; recommendation entries stay on the client.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one prior turn of the conversation, as supplied by the client.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PreferenceExtractor defines the contract for turning free-text conversation
// into structured dining preferences.
// This interface allows for swapping different AI providers (OpenAI, Gemini, etc.),
// and lets tests substitute a deterministic fake.
type PreferenceExtractor interface {
	// ExtractPreferences analyzes the latest user message together with the
	// prior turns and returns the structured preferences. It never fails:
	// any provider error degrades to a minimal object whose SearchQuery is the
	// raw message, so callers need no error handling of their own.
	ExtractPreferences(ctx context.Context, message string, history []ChatMessage) *ExtractedPreferences
}
