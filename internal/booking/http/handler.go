package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kiranraikar/parking-chat-backend/internal/auth"
	"github.com/kiranraikar/parking-chat-backend/internal/booking"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/request"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/response"
)

type BookingHandler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create books a slot for the authenticated user.
func (h *BookingHandler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:       auth.GetUserID(c),
		SlotID:       body.SlotID,
		LicensePlate: body.LicensePlate,
		StartTime:    body.StartTime,
		EndTime:      body.EndTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidTimeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "end time must be after start time"})
		case errors.Is(err, booking.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "parking slot not found"})
		case errors.Is(err, booking.ErrTimeConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "slot is already booked for this time"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

// List returns the authenticated user's bookings. Admins may list any
// user's bookings via the user_id query parameter.
func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	userID := auth.GetUserID(c)
	if requested := c.Query("user_id"); requested != "" && auth.IsAdmin(c) {
		userID = requested
	}

	filter := booking.Filter{
		UserID:   userID,
		Status:   booking.Status(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

// Get returns one booking, restricted to its owner unless admin.
func (h *BookingHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get booking"})
		return
	}

	if b.UserID != auth.GetUserID(c) && !auth.IsAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Cancel marks a booking cancelled, freeing its interval for rebooking.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	b, err := h.service.Cancel(c.Request.Context(), uri.ID, auth.GetUserID(c), auth.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, booking.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		case errors.Is(err, booking.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"error": "booking is already cancelled"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}
		return
	}
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Delete removes a booking row entirely.
func (h *BookingHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c), auth.IsAdmin(c)); err != nil {
		switch {
		case errors.Is(err, booking.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, booking.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}
