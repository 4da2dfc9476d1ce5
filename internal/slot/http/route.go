package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *SlotHandler, authMiddleware gin.HandlerFunc, adminMiddleware gin.HandlerFunc) {
	// Mall-scoped listing lives under /malls to keep the public URL shape
	// close to the catalog.
	g.GET("/malls/:id/slots", h.ListByMall)
	g.GET("/parking-rates", h.Rates)

	group := g.Group("/slots")
	group.GET("", h.List)
	group.GET("/available", h.Available)
	group.GET("/:id", h.Get)

	admin := group.Group("")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.POST("", h.Create)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}
