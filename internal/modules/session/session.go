// README: Client-held, append-only message log for one chat session.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"scout/internal/ai"
	"scout/internal/maps"
)

// MessageType distinguishes log entries. Recommendation entries carry the
// restaurant list and are never replayed to the server as history.
type MessageType string

const (
	TypeUser            MessageType = "user"
	TypeAssistant       MessageType = "assistant"
	TypeRecommendations MessageType = "recommendations"
)

// Message is one immutable entry in the session log.
type Message struct {
	ID          string
	Type        MessageType
	Content     string
	Restaurants []maps.Restaurant
	Timestamp   time.Time
}

// NewMessage builds a log entry with a fresh ID and timestamp.
func NewMessage(t MessageType, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Type:      t,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Log is the append-only session log. It lives only for the process lifetime;
// nothing is ever persisted. The mutex exists because the interactive client
// reads the log while sends append to it.
type Log struct {
	mu       sync.Mutex
	messages []Message
}

func NewLog() *Log {
	return &Log{}
}

// Append adds one entry. Entries are never modified or removed afterwards.
func (l *Log) Append(m Message) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, m)
}

// Messages returns a snapshot copy of the log.
func (l *Log) Messages() []Message {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Message, len(l.messages))
	copy(out, l.messages)
	return out
}

// Len reports the number of entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.messages)
}

// History renders the log as conversation history for the server: user and
// assistant entries only, in order, with recommendation entries dropped.
func (l *Log) History() []ai.ChatMessage {
	l.mu.Lock()
	defer l.mu.Unlock()

	var history []ai.ChatMessage
	for _, m := range l.messages {
		switch m.Type {
		case TypeUser:
			history = append(history, ai.ChatMessage{Role: ai.RoleUser, Content: m.Content})
		case TypeAssistant:
			history = append(history, ai.ChatMessage{Role: ai.RoleAssistant, Content: m.Content})
		}
	}
	return history
}
