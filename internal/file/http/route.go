package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *FileHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/files")

	// Downloads are public so mall photos can be embedded anywhere.
	group.GET("/:id", h.Download)
	group.GET("/:id/thumbnail", h.Thumbnail)

	authed := group.Group("")
	authed.Use(authMiddleware)
	{
		authed.POST("", h.Upload)
		authed.DELETE("/:id", h.Delete)
	}
}
