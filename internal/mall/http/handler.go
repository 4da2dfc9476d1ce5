package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kiranraikar/parking-chat-backend/internal/mall"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/request"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/response"
)

type MallHandler struct {
	service mall.Service
}

func NewHandler(service mall.Service) *MallHandler {
	return &MallHandler{service: service}
}

// List retrieves a paginated list of malls with optional keyword filtering.
func (h *MallHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	keyword := c.Query("q")

	filter := mall.Filter{
		Keyword:  keyword,
		Page:     page,
		PageSize: pageSize,
	}

	malls, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list malls"})
		return
	}

	items := make([]MallResponse, len(malls))
	for i, m := range malls {
		items[i] = NewMallResponse(m)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

// Get retrieves a single mall by its numeric id.
func (h *MallHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mall id"})
		return
	}

	m, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, mall.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mall not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get mall"})
		return
	}

	c.JSON(http.StatusOK, NewMallResponse(m))
}

// Create adds a new mall. Admin only.
func (h *MallHandler) Create(c *gin.Context) {
	var body CreateMallRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	m, err := h.service.Create(c.Request.Context(), mall.CreateMallRequest{
		Name:          body.Name,
		Address:       body.Address,
		City:          body.City,
		State:         body.State,
		ZipCode:       body.ZipCode,
		ContactNumber: body.ContactNumber,
		Email:         body.Email,
		OpeningTime:   body.OpeningTime,
		ClosingTime:   body.ClosingTime,
	})
	if err != nil {
		if errors.Is(err, mall.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create mall"})
		return
	}

	c.JSON(http.StatusCreated, NewMallResponse(m))
}

// Update applies a partial update to a mall. Admin only.
func (h *MallHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mall id"})
		return
	}

	var body UpdateMallRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	m, err := h.service.Update(c.Request.Context(), uri.ID, mall.UpdateMallRequest{
		Name:          body.Name,
		Address:       body.Address,
		City:          body.City,
		State:         body.State,
		ZipCode:       body.ZipCode,
		ContactNumber: body.ContactNumber,
		Email:         body.Email,
		OpeningTime:   body.OpeningTime,
		ClosingTime:   body.ClosingTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, mall.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "mall not found"})
		case errors.Is(err, mall.ErrEmptyName):
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update mall"})
		}
		return
	}

	c.JSON(http.StatusOK, NewMallResponse(m))
}

// Delete removes a mall. Admin only.
func (h *MallHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mall id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		if errors.Is(err, mall.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "mall not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete mall"})
		return
	}

	c.Status(http.StatusNoContent)
}
