package mall

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("mall not found")
	ErrEmptyName = errors.New("name cannot be empty")
)

// Mall represents a venue whose parking slots can be booked.
type Mall struct {
	ID            int64
	Name          string
	Address       string
	City          string
	State         string
	ZipCode       string
	ContactNumber string
	Email         string
	OpeningTime   string // display string, e.g. "10:00 AM"
	ClosingTime   string
	CreatedAt     time.Time
}

// Filter defines parameters for listing malls.
type Filter struct {
	Keyword  string // Search in Name or Address
	Page     int
	PageSize int
}
