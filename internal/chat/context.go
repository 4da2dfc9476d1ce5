package chat

// Intent is the coarse goal the extractor attributes to a conversation.
type Intent string

const (
	IntentCheckAvailableSlots Intent = "check_available_slots"
	IntentCreateBooking       Intent = "create_booking"
	IntentCancelBooking       Intent = "cancel_booking"
	IntentCheckParkingRates   Intent = "check_parking_rates"
	IntentCheckUserBookings   Intent = "check_user_bookings"
)

// SessionContext accumulates what the user has told us across turns, so the
// agent never asks for the same detail twice. It is keyed by user id and
// expires with the session.
type SessionContext struct {
	SelectedMall        string             `json:"selected_mall"`
	SelectedMallID      int64              `json:"selected_mall_id"`
	SelectedVehicleType string             `json:"selected_vehicle_type"`
	SelectedPlate       string             `json:"selected_license_plate"`
	SelectedTimePeriod  string             `json:"selected_time_period"`
	LastQueryType       string             `json:"last_query_type"`
	Intent              Intent             `json:"intent"`
	PendingSlotID       int64              `json:"pending_slot_id"`
	ParkingRates        map[string]float64 `json:"parking_rates,omitempty"`
}

func NewSessionContext() *SessionContext {
	return &SessionContext{}
}

// PendingBooking captures a booking proposal awaiting the user's yes/no.
// It snapshots the slot details so the confirmation turn does not depend on
// the catalog staying unchanged.
type PendingBooking struct {
	SlotID       int64   `json:"slot_id"`
	VehicleType  string  `json:"vehicle_type"`
	MallName     string  `json:"mall_name"`
	SlotNumber   string  `json:"slot_number"`
	HourlyRate   float64 `json:"hourly_rate"`
	LicensePlate string  `json:"license_plate"`
	TimePeriod   string  `json:"time_period"`
}
