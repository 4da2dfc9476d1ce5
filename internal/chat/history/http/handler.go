package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiranraikar/parking-chat-backend/internal/auth"
	"github.com/kiranraikar/parking-chat-backend/internal/chat/history"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/request"
)

type HistoryHandler struct {
	service history.Service
}

func NewHandler(service history.Service) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// List returns the authenticated user's conversations, newest first.
func (h *HistoryHandler) List(c *gin.Context) {
	conversations, err := h.service.List(c.Request.Context(), auth.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list conversations"})
		return
	}

	items := make([]ConversationResponse, len(conversations))
	for i, conv := range conversations {
		items[i] = NewConversationResponse(conv)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create starts an empty named conversation.
func (h *HistoryHandler) Create(c *gin.Context) {
	var body CreateConversationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	conv, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), body.Name)
	if err != nil {
		if errors.Is(err, history.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create conversation"})
		return
	}
	c.JSON(http.StatusCreated, NewConversationResponse(conv))
}

// Get returns a conversation with its full message log.
func (h *HistoryHandler) Get(c *gin.Context) {
	var uri request.ByUUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	conv, messages, err := h.service.Get(c.Request.Context(), uri.ID, auth.GetUserID(c))
	if err != nil {
		respondHistoryError(c, err)
		return
	}

	resp := ConversationDetailResponse{
		ConversationResponse: NewConversationResponse(conv),
		Messages:             make([]MessageResponse, len(messages)),
	}
	for i, m := range messages {
		resp.Messages[i] = NewMessageResponse(m)
	}
	c.JSON(http.StatusOK, resp)
}

// Rename changes a conversation's display name.
func (h *HistoryHandler) Rename(c *gin.Context) {
	var uri request.ByUUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	var body RenameConversationRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	conv, err := h.service.Rename(c.Request.Context(), uri.ID, auth.GetUserID(c), body.Name)
	if err != nil {
		if errors.Is(err, history.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		respondHistoryError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewConversationResponse(conv))
}

// Delete removes a conversation and its messages.
func (h *HistoryHandler) Delete(c *gin.Context) {
	var uri request.ByUUIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c)); err != nil {
		respondHistoryError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondHistoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, history.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
	case errors.Is(err, history.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process conversation request"})
	}
}
