package http

type ChatRequest struct {
	Query          string `json:"query" binding:"required"`
	ConversationID string `json:"conversation_id" binding:"omitempty,uuid"`
}

type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}
