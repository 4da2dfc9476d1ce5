package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *ChatHandler, authMiddleware gin.HandlerFunc) {
	g.POST("/chat", authMiddleware, h.Chat)
}
