package chat

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kiranraikar/parking-chat-backend/internal/mall"
)

var (
	mallIDRe = regexp.MustCompile(`mall\s+(?:id\s+)?(\d+)`)
	plateRe  = regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z]{1,2}\d{1,4}\b`)
)

// mallAliases maps colloquial names to a substring looked up against the
// catalog. Order matters: the first alias present in the message wins.
var mallAliases = []string{
	"phoenix",
	"palladium",
	"orion",
	"forum",
	"market city",
	"mall of asia",
}

var vehicleKeywords = []string{"car", "truck", "bike"}

var timeTokens = []string{
	"today", "tomorrow", "next week",
	"morning", "afternoon", "evening", "night",
	"am", "pm", "hours", "hour", "hr", "hrs",
}

// RateLookup fetches the per-vehicle-type hourly rates of a mall. The
// extractor calls it eagerly when it detects a pricing question, so the
// rates are already in context by the time a reply is rendered.
type RateLookup func(mallID int64) (map[string]float64, error)

// Extract scans one user message and folds whatever it recognizes into the
// session context: mall references (by id, by catalog name, or by alias),
// vehicle type, time phrases, license plates, and the overall intent.
//
// Time phrases are captured as the matched word plus the word before it
// ("3 pm", "2 hours"); when several tokens match, the last one listed wins.
// A detected plate sticks for the rest of the session. Earlier mall and
// vehicle mentions are overwritten by later ones.
func Extract(text string, malls []*mall.Mall, sc *SessionContext, rates RateLookup) {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "mall") {
		if m := mallIDRe.FindStringSubmatch(lower); m != nil {
			if id, err := strconv.ParseInt(m[1], 10, 64); err == nil {
				for _, ml := range malls {
					if ml.ID == id {
						sc.SelectedMall = ml.Name
						sc.SelectedMallID = ml.ID
						break
					}
				}
			}
		}
	}

	mallFound := false
	for _, ml := range malls {
		if strings.Contains(lower, strings.ToLower(ml.Name)) {
			sc.SelectedMall = ml.Name
			sc.SelectedMallID = ml.ID
			mallFound = true
			break
		}
	}

	if !mallFound {
		for _, alias := range mallAliases {
			if strings.Contains(lower, alias) {
				if sc.SelectedMall == "" {
					for _, ml := range malls {
						if strings.Contains(strings.ToLower(ml.Name), alias) {
							sc.SelectedMall = ml.Name
							sc.SelectedMallID = ml.ID
							break
						}
					}
				}
				break
			}
		}
	}

	for _, vt := range vehicleKeywords {
		if strings.Contains(lower, vt) {
			sc.SelectedVehicleType = vt
			break
		}
	}

	words := strings.Fields(lower)
	for _, token := range timeTokens {
		if !strings.Contains(lower, token) {
			continue
		}
		for i, word := range words {
			if strings.Contains(word, token) && i > 0 {
				sc.SelectedTimePeriod = words[i-1] + " " + word
				break
			}
		}
	}

	// Plates are matched against the original casing and are sticky.
	if sc.SelectedPlate == "" {
		if plate := plateRe.FindString(text); plate != "" {
			sc.SelectedPlate = plate
		}
	}

	extractIntent(lower, sc, rates)

	// A captured slot plus a plate and a time means the user has supplied
	// everything a paused booking was waiting for.
	if sc.PendingSlotID != 0 && sc.SelectedPlate != "" && sc.SelectedTimePeriod != "" {
		sc.Intent = IntentCreateBooking
	}
}

func extractIntent(lower string, sc *SessionContext, rates RateLookup) {
	containsAny := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}

	switch {
	case containsAny("available", "find", "looking for", "show slots"):
		sc.LastQueryType = "availability"
		sc.Intent = IntentCheckAvailableSlots
	case containsAny("book", "reserve"):
		sc.LastQueryType = "booking"
		sc.Intent = IntentCreateBooking
	case containsAny("cancel"):
		sc.LastQueryType = "cancellation"
		sc.Intent = IntentCancelBooking
	case containsAny("rate", "price", "cost", "fee", "charge"):
		sc.LastQueryType = "pricing"
		sc.Intent = IntentCheckParkingRates
		if sc.SelectedMallID != 0 && rates != nil {
			if fetched, err := rates(sc.SelectedMallID); err == nil && len(fetched) > 0 {
				sc.ParkingRates = fetched
			}
		}
	case containsAny("my booking", "view booking", "show booking", "check booking", "show bookings"):
		sc.LastQueryType = "view_bookings"
		sc.Intent = IntentCheckUserBookings
	}
}
