package booking

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("booking not found")
	ErrTimeConflict     = errors.New("time slot conflicts with an existing booking")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrSlotNotFound     = errors.New("parking slot not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking reserves one parking slot for one vehicle over a time interval.
// The denormalized fields (SlotNumber, MallName, LicensePlate) come from
// joins and are read-only.
type Booking struct {
	ID            int64
	ParkingSlotID int64
	SlotNumber    string
	MallID        int64
	MallName      string
	UserID        string
	VehicleID     int64
	LicensePlate  string
	StartTime     time.Time
	EndTime       time.Time
	Status        Status
	TotalAmount   float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID    string
	SlotID    int64
	MallID    int64
	Status    Status
	StartTime *time.Time
	EndTime   *time.Time
	Page      int
	PageSize  int
}
