package chat

import (
	"fmt"
	"strings"

	"github.com/kiranraikar/parking-chat-backend/internal/mall"
)

// promptSlotCap bounds how many slots the availability snapshot embeds in
// the system prompt.
const promptSlotCap = 20

// BuildSystemPrompt assembles the completer's system message: the assistant
// role and formatting rules, the mall catalog, the user's identity, whatever
// the session context already knows, and a snapshot of currently available
// slots so the model answers from real data instead of inventing slots.
func BuildSystemPrompt(userID, userName string, malls []*mall.Mall, sc *SessionContext, availableSlots string) string {
	var mallList strings.Builder
	for _, m := range malls {
		fmt.Fprintf(&mallList, "* %s (ID: %d)\n", m.Name, m.ID)
	}

	if userName == "" {
		userName = "User"
	}

	var b strings.Builder
	b.WriteString(`You are a helpful parking management assistant for a mall parking system. You can help users with:

1. Finding available parking slots
2. Checking parking rates
3. Creating parking bookings
4. Cancelling bookings
5. Viewing booking history

FORMATTING INSTRUCTIONS (FOLLOW THESE EXACTLY):
- NEVER respond with long paragraphs
- ALWAYS use simple asterisk (*) bullet points, one piece of information per line
- ALWAYS use numbered lists (1., 2., 3.) for sequential instructions
- ALWAYS break your response into short sections separated by line breaks

CONVERSATION INSTRUCTIONS:
- NEVER ask for information the user has already provided
- If the user has mentioned a mall, vehicle type, license plate, or time, remember it and use it
- NEVER repeat questions that have already been answered

When the user asks about availability or wants to book, ask ONLY for what is still missing:
* Which mall they're interested in
* What type of vehicle they have (car, bike, or truck)
* Their vehicle license plate number (e.g., "KA01AB1234")
* When and for how long they want to park (default duration is 2 hours)

To book a slot, tell the user to type "Book slot [SLOT_ID]" (e.g., "Book slot 5").
To see bookings, tell the user to type "Show my bookings".
If the user says "yes" or "confirm" after seeing available slots, an appropriate slot will be booked automatically.

Our system has the following malls, each with parking slots:
`)
	b.WriteString(mallList.String())

	fmt.Fprintf(&b, `
IMPORTANT USER INFORMATION:
* Current User ID: %s
* User Name: %s
* Always use this User ID for all operations and never ask for it
* Address the user by their name when asking for information

CURRENT CONVERSATION CONTEXT:
* Selected Mall: %s
* Selected Vehicle Type: %s
* Selected License Plate: %s
* Selected Time Period: %s

PARKING RATES (if available):
%s

CURRENTLY AVAILABLE SLOTS:
%s`,
		userID, userName,
		orNotSpecified(sc.SelectedMall),
		orNotSpecified(sc.SelectedVehicleType),
		orNotSpecified(sc.SelectedPlate),
		orNotSpecified(sc.SelectedTimePeriod),
		formatContextRates(sc),
		availableSlots,
	)
	return b.String()
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

func formatContextRates(sc *SessionContext) string {
	if len(sc.ParkingRates) == 0 {
		return "No parking rates available for the selected mall."
	}
	var b strings.Builder
	for _, vt := range vehicleKeywords {
		if rate, ok := sc.ParkingRates[vt]; ok {
			fmt.Fprintf(&b, "* %s: ₹%g/hour\n", capitalize(vt), rate)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
