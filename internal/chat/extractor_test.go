package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranraikar/parking-chat-backend/internal/mall"
)

func testMalls() []*mall.Mall {
	return []*mall.Mall{
		{ID: 1, Name: "Phoenix Marketcity"},
		{ID: 2, Name: "Orion Mall"},
		{ID: 3, Name: "Forum Shantiniketan"},
	}
}

func TestExtractMallByID(t *testing.T) {
	sc := NewSessionContext()
	Extract("show me mall 2 please", testMalls(), sc, nil)

	assert.Equal(t, "Orion Mall", sc.SelectedMall)
	assert.Equal(t, int64(2), sc.SelectedMallID)
}

func TestExtractMallByIDRequiresMallWord(t *testing.T) {
	sc := NewSessionContext()
	Extract("slot 2 looks good", testMalls(), sc, nil)

	assert.Empty(t, sc.SelectedMall)
	assert.Zero(t, sc.SelectedMallID)
}

func TestExtractMallByNameOverridesID(t *testing.T) {
	// A name reference later in the message wins over a numeric one.
	sc := NewSessionContext()
	Extract("not mall 2, I meant Forum Shantiniketan", testMalls(), sc, nil)

	assert.Equal(t, "Forum Shantiniketan", sc.SelectedMall)
	assert.Equal(t, int64(3), sc.SelectedMallID)
}

func TestExtractMallAlias(t *testing.T) {
	sc := NewSessionContext()
	Extract("anything near phoenix?", testMalls(), sc, nil)

	assert.Equal(t, "Phoenix Marketcity", sc.SelectedMall)
	assert.Equal(t, int64(1), sc.SelectedMallID)
}

func TestExtractAliasNeverOverwritesSelection(t *testing.T) {
	sc := NewSessionContext()
	sc.SelectedMall = "Orion Mall"
	sc.SelectedMallID = 2

	Extract("is phoenix better?", testMalls(), sc, nil)

	assert.Equal(t, "Orion Mall", sc.SelectedMall)
	assert.Equal(t, int64(2), sc.SelectedMallID)
}

func TestExtractVehicleType(t *testing.T) {
	sc := NewSessionContext()
	Extract("I need parking for my bike", testMalls(), sc, nil)
	assert.Equal(t, "bike", sc.SelectedVehicleType)

	// Later mentions overwrite.
	Extract("actually make that a car", testMalls(), sc, nil)
	assert.Equal(t, "car", sc.SelectedVehicleType)
}

func TestExtractTimePeriodCapturesPrecedingWord(t *testing.T) {
	sc := NewSessionContext()
	Extract("book tomorrow at 3 pm", testMalls(), sc, nil)

	// Both "tomorrow" and "pm" match; "pm" is listed later so it wins,
	// and the captured window is the token plus the word before it.
	assert.Equal(t, "3 pm", sc.SelectedTimePeriod)
}

func TestExtractTimePeriodDuration(t *testing.T) {
	sc := NewSessionContext()
	Extract("I need a slot for 3 hours", testMalls(), sc, nil)

	assert.Equal(t, "3 hours", sc.SelectedTimePeriod)
}

func TestExtractPlateIsSticky(t *testing.T) {
	sc := NewSessionContext()
	Extract("my plate is KA01AB1234", testMalls(), sc, nil)
	require.Equal(t, "KA01AB1234", sc.SelectedPlate)

	Extract("or maybe MH12CD5678", testMalls(), sc, nil)
	assert.Equal(t, "KA01AB1234", sc.SelectedPlate)
}

func TestExtractPlateKeepsOriginalCase(t *testing.T) {
	sc := NewSessionContext()
	Extract("plate ka01ab1234", testMalls(), sc, nil)

	// Lowercase text never matches the plate pattern.
	assert.Empty(t, sc.SelectedPlate)
}

func TestExtractIntentPriority(t *testing.T) {
	tests := []struct {
		text       string
		wantIntent Intent
		wantQuery  string
	}{
		{"show available slots", IntentCheckAvailableSlots, "availability"},
		{"find me parking to book", IntentCheckAvailableSlots, "availability"},
		{"book a slot", IntentCreateBooking, "booking"},
		{"cancel my reservation", IntentCreateBooking, "booking"}, // "reservation" contains "reserve"
		{"cancel my parking", IntentCancelBooking, "cancellation"},
		{"what does it cost", IntentCheckParkingRates, "pricing"},
		// Every view-bookings phrase contains "book", so the booking
		// branch always claims it; the exact command phrases are handled
		// before intent dispatch.
		{"view my bookings", IntentCreateBooking, "booking"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			sc := NewSessionContext()
			Extract(tt.text, testMalls(), sc, nil)
			assert.Equal(t, tt.wantIntent, sc.Intent)
			assert.Equal(t, tt.wantQuery, sc.LastQueryType)
		})
	}
}

func TestExtractPricingFetchesRates(t *testing.T) {
	sc := NewSessionContext()
	sc.SelectedMall = "Orion Mall"
	sc.SelectedMallID = 2

	var askedMall int64
	lookup := func(mallID int64) (map[string]float64, error) {
		askedMall = mallID
		return map[string]float64{"car": 50, "bike": 20}, nil
	}

	Extract("how much does parking cost", testMalls(), sc, lookup)

	assert.Equal(t, int64(2), askedMall)
	assert.Equal(t, map[string]float64{"car": 50, "bike": 20}, sc.ParkingRates)
}

func TestExtractCompletedPendingBookingForcesIntent(t *testing.T) {
	sc := NewSessionContext()
	sc.PendingSlotID = 7
	sc.SelectedTimePeriod = "3 pm"

	Extract("it's KA01AB1234, what are the rates?", testMalls(), sc, nil)

	// Plate plus time plus a waiting slot means resume the booking
	// even though the message reads like a pricing question.
	assert.Equal(t, IntentCreateBooking, sc.Intent)
}
