package history

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("conversation not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrEmptyName        = errors.New("name cannot be empty")
)

// Conversation is a named thread of chat turns belonging to one user.
type Conversation struct {
	ID        string
	UserID    string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is a single user turn with the agent's reply.
type Message struct {
	ID             int64
	ConversationID string
	UserQuery      string
	AgentResponse  string
	CreatedAt      time.Time
}
