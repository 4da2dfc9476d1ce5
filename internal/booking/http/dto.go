package http

import (
	"time"

	"github.com/kiranraikar/parking-chat-backend/internal/booking"
)

type BookingResponse struct {
	ID            int64     `json:"id"`
	ParkingSlotID int64     `json:"parking_slot_id"`
	SlotNumber    string    `json:"slot_number"`
	MallID        int64     `json:"mall_id"`
	MallName      string    `json:"mall_name"`
	UserID        string    `json:"user_id"`
	VehicleID     int64     `json:"vehicle_id"`
	LicensePlate  string    `json:"license_plate"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	TotalAmount   float64   `json:"total_amount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ParkingSlotID: b.ParkingSlotID,
		SlotNumber:    b.SlotNumber,
		MallID:        b.MallID,
		MallName:      b.MallName,
		UserID:        b.UserID,
		VehicleID:     b.VehicleID,
		LicensePlate:  b.LicensePlate,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Status:        string(b.Status),
		TotalAmount:   b.TotalAmount,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	SlotID       int64     `json:"slot_id" binding:"required,min=1"`
	LicensePlate string    `json:"license_plate" binding:"required"`
	StartTime    time.Time `json:"start_time" binding:"required"`
	EndTime      time.Time `json:"end_time" binding:"required"`
}
