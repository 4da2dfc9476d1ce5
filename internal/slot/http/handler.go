package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kiranraikar/parking-chat-backend/internal/booking"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/request"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/response"
	"github.com/kiranraikar/parking-chat-backend/internal/slot"
)

type SlotHandler struct {
	service        slot.Service
	bookingService booking.Service
}

func NewHandler(service slot.Service, bookingService booking.Service) *SlotHandler {
	return &SlotHandler{
		service:        service,
		bookingService: bookingService,
	}
}

// List retrieves a paginated list of slots with optional filtering.
func (h *SlotHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	mallID, _ := strconv.ParseInt(c.Query("mall_id"), 10, 64)

	filter := slot.Filter{
		MallID:   mallID,
		Page:     page,
		PageSize: pageSize,
	}
	if vt := c.Query("vehicle_type"); vt != "" {
		parsed, err := slot.ParseVehicleType(vt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_type"})
			return
		}
		filter.VehicleType = parsed
	}

	slots, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list slots"})
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

// Get retrieves a single slot by id.
func (h *SlotHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot id"})
		return
	}

	s, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "slot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get slot"})
		return
	}
	c.JSON(http.StatusOK, NewSlotResponse(s))
}

// ListByMall returns all slots of a mall, optionally narrowed by vehicle type.
func (h *SlotHandler) ListByMall(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mall id"})
		return
	}

	var vt slot.VehicleType
	if raw := c.Query("vehicle_type"); raw != "" {
		parsed, err := slot.ParseVehicleType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_type"})
			return
		}
		vt = parsed
	}

	slots, err := h.service.ListByMall(c.Request.Context(), uri.ID, vt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list slots"})
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Available lists slots of a mall for a time interval, annotated with their
// booked status. Without include_booked=true only free slots are returned.
func (h *SlotHandler) Available(c *gin.Context) {
	mallID, err := strconv.ParseInt(c.Query("mall_id"), 10, 64)
	if err != nil || mallID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mall_id is required"})
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end_time"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be RFC3339"})
		return
	}
	if !end.After(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be after start_time"})
		return
	}

	var vt slot.VehicleType
	if raw := c.Query("vehicle_type"); raw != "" {
		parsed, err := slot.ParseVehicleType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vehicle_type"})
			return
		}
		vt = parsed
	}

	includeBooked, _ := strconv.ParseBool(c.DefaultQuery("include_booked", "false"))

	statuses, err := h.bookingService.SlotStatuses(c.Request.Context(), mallID, vt, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve availability"})
		return
	}

	items := make([]AvailableSlotResponse, 0, len(statuses))
	for _, st := range statuses {
		if st.Booked && !includeBooked {
			continue
		}
		items = append(items, AvailableSlotResponse{
			SlotResponse: NewSlotResponse(st.Slot),
			Booked:       st.Booked,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Rates returns the pricing table, optionally narrowed to one mall.
func (h *SlotHandler) Rates(c *gin.Context) {
	mallID, _ := strconv.ParseInt(c.Query("mall_id"), 10, 64)

	rates, err := h.service.Rates(c.Request.Context(), mallID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rates"})
		return
	}

	items := make([]RateResponse, len(rates))
	for i, r := range rates {
		items[i] = NewRateResponse(r)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Create adds a new slot. Admin only.
func (h *SlotHandler) Create(c *gin.Context) {
	var body CreateSlotRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Create(c.Request.Context(), slot.CreateRequest{
		MallID:      body.MallID,
		SlotNumber:  body.SlotNumber,
		Floor:       body.Floor,
		Section:     body.Section,
		VehicleType: body.VehicleType,
		HourlyRate:  body.HourlyRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidMall):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mall_id"})
		case errors.Is(err, slot.ErrEmptySlotNumber), errors.Is(err, slot.ErrInvalidVehicleType), errors.Is(err, slot.ErrInvalidRate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create slot"})
		}
		return
	}
	c.JSON(http.StatusCreated, NewSlotResponse(s))
}

// Update applies a partial update to a slot. Admin only.
func (h *SlotHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot id"})
		return
	}

	var body UpdateSlotRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.Update(c.Request.Context(), uri.ID, slot.UpdateRequest{
		SlotNumber:  body.SlotNumber,
		Floor:       body.Floor,
		Section:     body.Section,
		VehicleType: body.VehicleType,
		HourlyRate:  body.HourlyRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "slot not found"})
		case errors.Is(err, slot.ErrEmptySlotNumber), errors.Is(err, slot.ErrInvalidVehicleType), errors.Is(err, slot.ErrInvalidRate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update slot"})
		}
		return
	}
	c.JSON(http.StatusOK, NewSlotResponse(s))
}

// Delete removes a slot. Admin only.
func (h *SlotHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "slot not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete slot"})
		return
	}
	c.Status(http.StatusNoContent)
}
