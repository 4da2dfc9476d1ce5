package vehicle

import (
	"errors"
	"time"
)

var (
	ErrNotFound   = errors.New("vehicle not found")
	ErrEmptyPlate = errors.New("license plate cannot be empty")
)

// Vehicle is a registered vehicle tied to a user account. Bookings
// reference a vehicle so the gate system knows which plate to admit.
type Vehicle struct {
	ID           int64
	UserID       string
	LicensePlate string
	Make         string
	Model        string
	Color        string
	VehicleType  string
	CreatedAt    time.Time
}
