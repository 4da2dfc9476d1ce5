package http

import (
	"time"

	"github.com/kiranraikar/parking-chat-backend/internal/chat/history"
)

type ConversationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewConversationResponse(c *history.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type MessageResponse struct {
	ID            int64     `json:"id"`
	UserQuery     string    `json:"user_query"`
	AgentResponse string    `json:"agent_response"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewMessageResponse(m *history.Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		UserQuery:     m.UserQuery,
		AgentResponse: m.AgentResponse,
		CreatedAt:     m.CreatedAt,
	}
}

type ConversationDetailResponse struct {
	ConversationResponse
	Messages []MessageResponse `json:"messages"`
}

type CreateConversationRequest struct {
	Name string `json:"name" binding:"required"`
}

type RenameConversationRequest struct {
	Name string `json:"name" binding:"required"`
}
