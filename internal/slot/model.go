package slot

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound           = errors.New("parking slot not found")
	ErrInvalidMall        = errors.New("invalid mall_id")
	ErrInvalidVehicleType = errors.New("invalid vehicle type")
	ErrEmptySlotNumber    = errors.New("slot number cannot be empty")
	ErrInvalidRate        = errors.New("hourly rate must be positive")
)

// VehicleType classifies which vehicles a slot accommodates.
type VehicleType string

const (
	VehicleCar   VehicleType = "car"
	VehicleBike  VehicleType = "bike"
	VehicleTruck VehicleType = "truck"
)

// ParseVehicleType validates a raw string against the known vehicle types.
func ParseVehicleType(s string) (VehicleType, error) {
	switch vt := VehicleType(strings.ToLower(strings.TrimSpace(s))); vt {
	case VehicleCar, VehicleBike, VehicleTruck:
		return vt, nil
	}
	return "", ErrInvalidVehicleType
}

// Slot represents a single bookable parking space in a mall.
type Slot struct {
	ID          int64
	MallID      int64
	SlotNumber  string // e.g. "A-12"
	Floor       string
	Section     string
	VehicleType VehicleType
	HourlyRate  float64
	CreatedAt   time.Time
}

// Filter defines parameters for listing slots.
type Filter struct {
	MallID      int64
	VehicleType VehicleType
	Page        int
	PageSize    int
}

// Rate is one row of the per-mall pricing table.
type Rate struct {
	MallID      int64
	MallName    string
	VehicleType VehicleType
	HourlyRate  float64
}
