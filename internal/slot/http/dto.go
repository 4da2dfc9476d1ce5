package http

import (
	"time"

	"github.com/kiranraikar/parking-chat-backend/internal/slot"
)

type SlotResponse struct {
	ID          int64     `json:"id"`
	MallID      int64     `json:"mall_id"`
	SlotNumber  string    `json:"slot_number"`
	Floor       string    `json:"floor"`
	Section     string    `json:"section"`
	VehicleType string    `json:"vehicle_type"`
	HourlyRate  float64   `json:"hourly_rate"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewSlotResponse(s *slot.Slot) SlotResponse {
	return SlotResponse{
		ID:          s.ID,
		MallID:      s.MallID,
		SlotNumber:  s.SlotNumber,
		Floor:       s.Floor,
		Section:     s.Section,
		VehicleType: string(s.VehicleType),
		HourlyRate:  s.HourlyRate,
		CreatedAt:   s.CreatedAt,
	}
}

// AvailableSlotResponse annotates a slot with its booked status for the
// requested interval.
type AvailableSlotResponse struct {
	SlotResponse
	Booked bool `json:"booked"`
}

type RateResponse struct {
	MallID      int64   `json:"mall_id"`
	MallName    string  `json:"mall_name"`
	VehicleType string  `json:"vehicle_type"`
	HourlyRate  float64 `json:"hourly_rate"`
}

func NewRateResponse(r *slot.Rate) RateResponse {
	return RateResponse{
		MallID:      r.MallID,
		MallName:    r.MallName,
		VehicleType: string(r.VehicleType),
		HourlyRate:  r.HourlyRate,
	}
}

type CreateSlotRequest struct {
	MallID      int64   `json:"mall_id" binding:"required,min=1"`
	SlotNumber  string  `json:"slot_number" binding:"required"`
	Floor       string  `json:"floor"`
	Section     string  `json:"section"`
	VehicleType string  `json:"vehicle_type" binding:"required,oneof=car bike truck"`
	HourlyRate  float64 `json:"hourly_rate" binding:"required,gt=0"`
}

type UpdateSlotRequest struct {
	SlotNumber  *string  `json:"slot_number"`
	Floor       *string  `json:"floor"`
	Section     *string  `json:"section"`
	VehicleType *string  `json:"vehicle_type" binding:"omitempty,oneof=car bike truck"`
	HourlyRate  *float64 `json:"hourly_rate" binding:"omitempty,gt=0"`
}
