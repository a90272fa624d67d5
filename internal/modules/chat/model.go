// README: Request/response shapes for the chat turn endpoint.
package chat

import (
	"scout/internal/ai"
	"scout/internal/maps"
)

// ChatRequest is one user turn plus the client-held prior history.
// The history carries user/assistant entries only; recommendation entries
// never leave the client.
type ChatRequest struct {
	Message             string           `json:"message"`
	ConversationHistory []ai.ChatMessage `json:"conversationHistory,omitempty"`
}

// ChatResponse is the assistant's reply for one turn. NeedsLocation true means
// the reply is a clarifying question and Restaurants is always empty.
type ChatResponse struct {
	AssistantMessage string            `json:"assistantMessage"`
	Restaurants      []maps.Restaurant `json:"restaurants,omitempty"`
	NeedsLocation    bool              `json:"needsLocation,omitempty"`
}
