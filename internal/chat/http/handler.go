package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kiranraikar/parking-chat-backend/internal/auth"
	"github.com/kiranraikar/parking-chat-backend/internal/chat"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/logger"
)

type ChatHandler struct {
	agent *chat.Agent
}

func NewHandler(agent *chat.Agent) *ChatHandler {
	return &ChatHandler{agent: agent}
}

// Chat runs one turn of the booking conversation for the authenticated user.
func (h *ChatHandler) Chat(c *gin.Context) {
	var body ChatRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	reply, conversationID, err := h.agent.Process(c.Request.Context(), userID, auth.GetUserName(c), body.Query, body.ConversationID)
	if err != nil {
		logger.L().Error("chat turn failed", zap.String("user_id", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		return
	}

	c.JSON(http.StatusOK, ChatResponse{
		Response:       reply,
		ConversationID: conversationID,
	})
}
