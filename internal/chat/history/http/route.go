package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *HistoryHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/chat-history/conversations")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Rename)
		group.DELETE("/:id", h.Delete)
	}
}
