package chat

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kiranraikar/parking-chat-backend/internal/booking"
	"github.com/kiranraikar/parking-chat-backend/internal/chat/history"
	"github.com/kiranraikar/parking-chat-backend/internal/mall"
	"github.com/kiranraikar/parking-chat-backend/internal/pkg/logger"
	"github.com/kiranraikar/parking-chat-backend/internal/slot"
)

const (
	// refreshBookingsMarker is embedded verbatim in cancellation replies;
	// the frontend watches for it and reloads the bookings tab.
	refreshBookingsMarker = "<refresh-bookings></refresh-bookings>"

	bookSlotPrefix      = "book slot "
	cancelBookingPrefix = "cancel booking "

	// recentTurns is how much conversation history the completer sees.
	recentTurns = 5

	timeFormat = "02/01/2006, 03:04 PM"

	fallbackApology = "I'm sorry, I'm having trouble responding right now. Please try again in a moment."
)

// Exact-match command phrases. Anything else goes through intent dispatch
// and finally the completer.
var (
	showBookingsPhrases = []string{
		"check my bookings", "show my bookings", "view my bookings", "my bookings", "check bookings",
	}
	ratesPhrases = []string{
		"check parking rates", "show rates", "parking rates", "what are the rates", "how much does it cost",
	}
	availableSlotsPhrases = []string{
		"check available slots", "show available slots", "available slots", "find slots", "find parking",
	}
	confirmPhrases = []string{
		"yes", "confirm", "yes, please", "yes, book it",
	}
)

// Agent drives the booking conversation. Deterministic paths (commands,
// phrase matches, detected intents) run against the database directly; only
// unmatched messages reach the language model.
type Agent struct {
	store          ContextStore
	mallService    mall.Service
	slotService    slot.Service
	bookingService booking.Service
	historyService history.Service
	completer      Completer

	now func() time.Time
}

func NewAgent(
	store ContextStore,
	mallService mall.Service,
	slotService slot.Service,
	bookingService booking.Service,
	historyService history.Service,
	completer Completer,
) *Agent {
	return &Agent{
		store:          store,
		mallService:    mallService,
		slotService:    slotService,
		bookingService: bookingService,
		historyService: historyService,
		completer:      completer,
		now:            time.Now,
	}
}

// Process handles one user message and returns the reply plus the
// conversation id the turn was recorded under (a new one when the caller
// passed none). The per-user session lock is held for the whole turn.
func (a *Agent) Process(ctx context.Context, userID, userName, query, conversationID string) (string, string, error) {
	unlock := a.store.Lock(userID)
	defer unlock()

	sc, err := a.store.Context(ctx, userID)
	if err != nil {
		return "", "", err
	}

	malls, err := a.mallService.All(ctx)
	if err != nil {
		return "", "", err
	}

	Extract(query, malls, sc, a.rateLookup(ctx))
	if err := a.store.SetContext(ctx, userID, sc); err != nil {
		return "", "", err
	}

	reply := a.dispatch(ctx, userID, userName, sc, malls, query, conversationID)

	convID, err := a.historyService.Record(ctx, userID, conversationID, query, reply)
	if err != nil {
		logger.L().Warn("failed to record chat turn",
			zap.String("user_id", userID),
			zap.Error(err))
		convID = conversationID
	}
	return reply, convID, nil
}

func (a *Agent) rateLookup(ctx context.Context) RateLookup {
	return func(mallID int64) (map[string]float64, error) {
		rates, err := a.slotService.Rates(ctx, mallID)
		if err != nil {
			return nil, err
		}
		byType := make(map[string]float64)
		for _, r := range rates {
			if _, ok := byType[string(r.VehicleType)]; !ok {
				byType[string(r.VehicleType)] = r.HourlyRate
			}
		}
		return byType, nil
	}
}

func (a *Agent) dispatch(ctx context.Context, userID, userName string, sc *SessionContext, malls []*mall.Mall, query, conversationID string) string {
	lower := strings.ToLower(strings.TrimSpace(query))

	switch {
	case strings.HasPrefix(lower, bookSlotPrefix):
		return a.handleBookCommand(ctx, userID, sc, lower)
	case strings.HasPrefix(lower, cancelBookingPrefix):
		return a.handleCancelCommand(ctx, userID, lower)
	case matchesAny(lower, showBookingsPhrases):
		return a.renderBookings(ctx, userID)
	case matchesAny(lower, ratesPhrases):
		return a.renderRates(ctx, sc, malls)
	case matchesAny(lower, availableSlotsPhrases):
		return a.renderAvailable(ctx, sc, malls)
	case matchesAny(lower, confirmPhrases):
		return a.handleConfirmation(ctx, userID, sc)
	}

	switch sc.Intent {
	case IntentCheckAvailableSlots:
		return a.renderAvailable(ctx, sc, malls)
	case IntentCheckParkingRates:
		return a.renderRates(ctx, sc, malls)
	case IntentCheckUserBookings:
		return a.renderBookings(ctx, userID)
	case IntentCreateBooking:
		if sc.SelectedMallID != 0 && sc.SelectedVehicleType != "" {
			return a.proposeFromContext(ctx, userID, sc)
		}
	}
	// Cancellation needs an explicit booking id, so the intent alone is not
	// actionable and falls through to the completer.

	return a.fallback(ctx, userID, userName, sc, malls, query, conversationID)
}

func matchesAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if lower == p {
			return true
		}
	}
	return false
}

// handleBookCommand reacts to "book slot N": it snapshots the slot into a
// pending booking and either asks for what is still missing or asks for a
// yes/no confirmation.
func (a *Agent) handleBookCommand(ctx context.Context, userID string, sc *SessionContext, lower string) string {
	idStr := strings.TrimSpace(strings.TrimPrefix(lower, bookSlotPrefix))
	slotID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return "Sorry, I couldn't understand the slot ID. Please use the format 'Book slot X' where X is the slot ID number."
	}

	sl, err := a.slotService.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			return fmt.Sprintf("Sorry, I couldn't find a parking slot with ID %d. Please check the ID and try again.", slotID)
		}
		return "Sorry, there was an error processing your booking request. Please try again."
	}

	m, err := a.mallService.GetByID(ctx, sl.MallID)
	if err != nil {
		return "Sorry, there was an error processing your booking request. Please try again."
	}

	sc.SelectedMall = m.Name
	sc.SelectedMallID = m.ID
	sc.SelectedVehicleType = string(sl.VehicleType)
	a.saveContext(ctx, userID, sc)

	pending := &PendingBooking{
		SlotID:       sl.ID,
		VehicleType:  string(sl.VehicleType),
		MallName:     m.Name,
		SlotNumber:   sl.SlotNumber,
		HourlyRate:   sl.HourlyRate,
		LicensePlate: sc.SelectedPlate,
		TimePeriod:   sc.SelectedTimePeriod,
	}
	if err := a.store.SetPendingBooking(ctx, userID, pending); err != nil {
		return "Sorry, there was an error processing your booking request. Please try again."
	}

	var missing []string
	if sc.SelectedPlate == "" {
		missing = append(missing, "license plate number")
	}
	if sc.SelectedTimePeriod == "" {
		missing = append(missing, "booking time")
	}

	details := fmt.Sprintf(`Slot Details:
* Mall: %s
* Slot ID: %d
* Type: %s
* Number: %s
* Rate: ₹%g/hour`,
		m.Name, sl.ID, sl.VehicleType, sl.SlotNumber, sl.HourlyRate)

	if len(missing) > 0 {
		sc.PendingSlotID = sl.ID
		a.saveContext(ctx, userID, sc)

		var asks []string
		if sc.SelectedPlate == "" {
			asks = append(asks, "Please provide your vehicle license plate number (e.g., KA01AB1234).")
		}
		if sc.SelectedTimePeriod == "" {
			asks = append(asks, `Please specify when you want to park (e.g., "tomorrow at 5 pm", "today at 3 pm").`)
		}

		return fmt.Sprintf(`I've found slot %d at %s.

%s

Before I can complete your booking, I need your %s.

%s`, sl.ID, m.Name, details, strings.Join(missing, " and "), strings.Join(asks, "\n"))
	}

	return fmt.Sprintf(`I've found slot %d at %s.

%s
* License Plate: %s
* Time: %s

Please confirm if you want to proceed with booking.
If yes, I will book the slot. If no, please let me know and I will cancel the booking request.

Please respond with "Yes" or "No".`, sl.ID, m.Name, details, sc.SelectedPlate, sc.SelectedTimePeriod)
}

// handleConfirmation reacts to a yes-variant: commit the pending booking if
// there is one, otherwise propose a slot from context, otherwise admit we
// don't know what is being confirmed.
func (a *Agent) handleConfirmation(ctx context.Context, userID string, sc *SessionContext) string {
	pending, err := a.store.PendingBooking(ctx, userID)
	if err != nil {
		return "Sorry, there was an error processing your booking confirmation. Please try again."
	}
	if pending != nil {
		return a.commitPending(ctx, userID, sc, pending)
	}
	if sc.SelectedMallID != 0 && sc.SelectedVehicleType != "" {
		return a.proposeFromContext(ctx, userID, sc)
	}
	return "I'm not sure what you're confirming. Please provide more details about which mall and vehicle type you're interested in."
}

// commitPending turns the pending booking into a confirmed row.
func (a *Agent) commitPending(ctx context.Context, userID string, sc *SessionContext, pending *PendingBooking) string {
	start, end := a.bookingWindow(sc)

	plate := sc.SelectedPlate
	if plate == "" {
		plate = demoPlate(userID, pending.VehicleType)
	}

	b, err := a.bookingService.Create(ctx, booking.CreateRequest{
		UserID:       userID,
		SlotID:       pending.SlotID,
		LicensePlate: plate,
		StartTime:    start,
		EndTime:      end,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrTimeConflict):
			// The pending booking lost its slot; a new search is needed.
			a.discardPending(ctx, userID, sc)
			return "Sorry, this slot is already booked for the requested time period.\nPlease try a different time or check for other available slots."
		case errors.Is(err, booking.ErrSlotNotFound):
			a.discardPending(ctx, userID, sc)
			return "Sorry, the slot you were interested in is no longer available. Let me find another one for you."
		default:
			logger.L().Error("chat booking commit failed",
				zap.String("user_id", userID),
				zap.Int64("slot_id", pending.SlotID),
				zap.Error(err))
			return "Sorry, there was an error creating your booking. Please try again later."
		}
	}

	a.discardPending(ctx, userID, sc)

	return fmt.Sprintf(`Great! Your booking has been confirmed.

Booking Details:
* Mall: %s
* Slot: %s
* Vehicle Type: %s
* Start Time: %s
* End Time: %s
* Amount: ₹%g
* Status: %s

Your booking has been added to the Bookings tab. You can view all your bookings there.
Thank you for using our parking service!`,
		pending.MallName, pending.SlotNumber, pending.VehicleType,
		b.StartTime.Format(timeFormat), b.EndTime.Format(timeFormat),
		b.TotalAmount, b.Status)
}

// discardPending drops the pending booking and the remembered slot id. Used
// after a commit attempt, whether it succeeded or hit a conflict.
func (a *Agent) discardPending(ctx context.Context, userID string, sc *SessionContext) {
	sc.PendingSlotID = 0
	if err := a.store.SetContext(ctx, userID, sc); err != nil {
		logger.L().Warn("failed to clear pending slot id", zap.String("user_id", userID), zap.Error(err))
	}
	if err := a.store.ClearPendingBooking(ctx, userID); err != nil {
		logger.L().Warn("failed to clear pending booking", zap.String("user_id", userID), zap.Error(err))
	}
}

// proposeFromContext finds a slot matching the accumulated context and asks
// for confirmation, pausing for the plate or time when they are missing.
func (a *Agent) proposeFromContext(ctx context.Context, userID string, sc *SessionContext) string {
	if sc.SelectedPlate == "" {
		return "Please provide your vehicle license plate number (e.g., KA01AB1234)."
	}
	if sc.SelectedTimePeriod == "" {
		return `Please specify when you want to park (e.g., "tomorrow at 5 pm", "today at 3 pm").`
	}

	start, end := a.bookingWindow(sc)

	var chosen *slot.Slot
	if sc.PendingSlotID != 0 {
		sl, err := a.slotService.GetByID(ctx, sc.PendingSlotID)
		if err != nil {
			sc.PendingSlotID = 0
			a.saveContext(ctx, userID, sc)
			return "Sorry, the slot you were interested in is no longer available. Let me find another one for you."
		}
		free, err := a.slotIsFree(ctx, sl, start, end)
		if err != nil {
			return "Sorry, there was an error processing your booking request. Please try again."
		}
		if !free {
			sc.PendingSlotID = 0
			a.saveContext(ctx, userID, sc)
			return "Sorry, the slot you were interested in is already booked for the requested time period. Let me find another one for you."
		}
		chosen = sl
	}

	if chosen == nil {
		available, err := a.bookingService.FindAvailable(ctx, sc.SelectedMallID, slot.VehicleType(sc.SelectedVehicleType), start, end)
		if err != nil {
			return "Sorry, there was an error processing your booking request. Please try again."
		}
		if len(available) == 0 {
			return fmt.Sprintf("Sorry, there are no available %s slots at %s for the requested time period.",
				sc.SelectedVehicleType, sc.SelectedMall)
		}
		chosen = available[0]
	}

	pending := &PendingBooking{
		SlotID:       chosen.ID,
		VehicleType:  string(chosen.VehicleType),
		MallName:     sc.SelectedMall,
		SlotNumber:   chosen.SlotNumber,
		HourlyRate:   chosen.HourlyRate,
		LicensePlate: sc.SelectedPlate,
		TimePeriod:   sc.SelectedTimePeriod,
	}
	if err := a.store.SetPendingBooking(ctx, userID, pending); err != nil {
		return "Sorry, there was an error processing your booking request. Please try again."
	}

	return fmt.Sprintf(`I've found an available slot for your %s at %s.

Slot Details:
* Mall: %s
* Slot ID: %d
* Type: %s
* Number: %s
* Rate: ₹%g/hour
* License Plate: %s
* Time: %s

Please confirm if you want to proceed with booking.
If yes, I will book the slot. If no, please let me know and I will cancel the booking request.

Please respond with "Yes" or "No".`,
		sc.SelectedVehicleType, sc.SelectedMall,
		pending.MallName, chosen.ID, pending.VehicleType, pending.SlotNumber, pending.HourlyRate,
		sc.SelectedPlate, sc.SelectedTimePeriod)
}

func (a *Agent) slotIsFree(ctx context.Context, sl *slot.Slot, start, end time.Time) (bool, error) {
	available, err := a.bookingService.FindAvailable(ctx, sl.MallID, sl.VehicleType, start, end)
	if err != nil {
		return false, err
	}
	for _, candidate := range available {
		if candidate.ID == sl.ID {
			return true, nil
		}
	}
	return false, nil
}

// handleCancelCommand reacts to "cancel booking N". The booking row is
// deleted outright so the interval frees up immediately.
func (a *Agent) handleCancelCommand(ctx context.Context, userID string, lower string) string {
	idStr := strings.TrimSpace(strings.TrimPrefix(lower, cancelBookingPrefix))
	bookingID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return "Sorry, I couldn't understand the booking ID. Please use the format 'Cancel booking X' where X is the booking ID number."
	}

	notFound := fmt.Sprintf(`Booking #%d was not found or doesn't belong to you.

Please check your bookings again with "show my bookings" to see your current active bookings.`, bookingID)

	b, err := a.bookingService.GetByID(ctx, bookingID)
	if err != nil || b.UserID != userID {
		return notFound
	}

	if err := a.bookingService.Delete(ctx, bookingID, userID, false); err != nil {
		if errors.Is(err, booking.ErrNotFound) || errors.Is(err, booking.ErrPermissionDenied) {
			return notFound
		}
		return "Sorry, there was an error cancelling your booking. Please try again later or contact customer support if the problem persists."
	}

	return fmt.Sprintf(`Booking #%d has been successfully cancelled and deleted.

The parking slot is now available for others to book.
%s

Please check the Bookings tab to see your updated bookings.`, bookingID, refreshBookingsMarker)
}

func (a *Agent) renderBookings(ctx context.Context, userID string) string {
	bookings, _, err := a.bookingService.List(ctx, booking.Filter{
		UserID:   userID,
		Status:   booking.StatusConfirmed,
		PageSize: 100,
	})
	if err != nil {
		return "Sorry, there was an error checking your bookings. Please try again."
	}

	if len(bookings) == 0 {
		return `You have no active bookings in the system.
Would you like to:
* Create a new booking
* Check parking rates
* Find available parking slots

Note: Cancelled bookings are automatically deleted from the system.`
	}

	var b strings.Builder
	b.WriteString("Here are your current active bookings:\n")
	for _, bk := range bookings {
		fmt.Fprintf(&b, `
Booking ID: %d
* Mall: %s
* Slot: %s
* Vehicle: %s
* From: %s
* To: %s
* Amount: ₹%g
* Status: %s
`,
			bk.ID, bk.MallName, bk.SlotNumber, bk.LicensePlate,
			bk.StartTime.Format(timeFormat), bk.EndTime.Format(timeFormat),
			bk.TotalAmount, bk.Status)
	}
	b.WriteString(`
To cancel a booking, type "Cancel booking [ID]" where ID is the actual Booking ID number shown above.
For example: "Cancel booking 12" to cancel the booking with ID 12.

Note: Cancelled bookings are automatically deleted from the system.`)
	return b.String()
}

func (a *Agent) renderRates(ctx context.Context, sc *SessionContext, malls []*mall.Mall) string {
	rates, err := a.slotService.Rates(ctx, sc.SelectedMallID)
	if err != nil {
		return "Sorry, there was an error checking parking rates. Please try again."
	}

	if len(rates) == 0 {
		return "Sorry, I couldn't find any parking rates.\nPlease specify which mall you're interested in.\n\n" + mallListPrompt(malls)
	}

	var b strings.Builder
	b.WriteString("Here are the current parking rates:\n")
	currentMall := int64(0)
	for _, r := range rates {
		if r.MallID != currentMall {
			fmt.Fprintf(&b, "\nRates at %s:\n", r.MallName)
			currentMall = r.MallID
		}
		fmt.Fprintf(&b, "* %s: ₹%g/hour\n", capitalize(string(r.VehicleType)), r.HourlyRate)
	}
	b.WriteString(`
Would you like to:
* Book a parking slot
* Check available slots
* View your bookings`)
	return b.String()
}

func (a *Agent) renderAvailable(ctx context.Context, sc *SessionContext, malls []*mall.Mall) string {
	if sc.SelectedMallID == 0 {
		return "Please specify which mall you're interested in.\n\n" + mallListPrompt(malls)
	}
	if sc.SelectedVehicleType == "" {
		return `Please specify what type of vehicle you have.

Available vehicle types:
* Car
* Bike
* Truck`
	}

	start, end := a.bookingWindow(sc)
	available, err := a.bookingService.FindAvailable(ctx, sc.SelectedMallID, slot.VehicleType(sc.SelectedVehicleType), start, end)
	if err != nil {
		return "Sorry, there was an error checking available slots. Please try again."
	}

	if len(available) == 0 {
		return fmt.Sprintf(`Sorry, there are no available %s slots at %s.

Would you like to:
* Check another mall
* Check another vehicle type
* Check parking rates`, sc.SelectedVehicleType, sc.SelectedMall)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the available %s slots at %s:\n", sc.SelectedVehicleType, sc.SelectedMall)
	shown := available
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, sl := range shown {
		fmt.Fprintf(&b, `
* Slot ID: %d
  Mall: %s
  Number: %s
  Floor: %s, Section: %s
  Vehicle Type: %s
  Rate: ₹%g/hour
`,
			sl.ID, sc.SelectedMall, sl.SlotNumber, sl.Floor, sl.Section, sl.VehicleType, sl.HourlyRate)
	}
	if len(available) > 10 {
		fmt.Fprintf(&b, "\n... and %d more slots available.\n", len(available)-10)
	}
	b.WriteString("\nTo book a slot, type \"Book slot [ID]\" (e.g., \"Book slot 5\").")
	return b.String()
}

// fallback hands the message to the completer with the system prompt and
// recent turns of the conversation. Completer failures degrade to a canned
// apology; the session context is untouched either way.
func (a *Agent) fallback(ctx context.Context, userID, userName string, sc *SessionContext, malls []*mall.Mall, query, conversationID string) string {
	if a.completer == nil {
		return fallbackApology
	}

	snapshot := a.availabilitySnapshot(ctx, sc, malls)
	system := BuildSystemPrompt(userID, userName, malls, sc, snapshot)

	messages := []Message{{Role: RoleSystem, Content: system}}

	recent, err := a.historyService.Recent(ctx, userID, conversationID, recentTurns)
	if err != nil {
		logger.L().Warn("failed to load chat history", zap.String("user_id", userID), zap.Error(err))
	}
	for _, turn := range recent {
		messages = append(messages,
			Message{Role: RoleUser, Content: turn.UserQuery},
			Message{Role: RoleAssistant, Content: turn.AgentResponse},
		)
	}
	messages = append(messages, Message{Role: RoleUser, Content: query})

	reply, err := a.completer.Complete(ctx, messages)
	if err != nil {
		logger.L().Warn("chat completion failed", zap.String("user_id", userID), zap.Error(err))
		return fallbackApology
	}
	return reply
}

// availabilitySnapshot renders up to promptSlotCap free slots for the system
// prompt, starting with the selected mall so its slots are never crowded out.
func (a *Agent) availabilitySnapshot(ctx context.Context, sc *SessionContext, malls []*mall.Mall) string {
	start, end := a.bookingWindow(sc)

	ordered := malls
	if sc.SelectedMallID != 0 {
		ordered = make([]*mall.Mall, 0, len(malls))
		for _, m := range malls {
			if m.ID == sc.SelectedMallID {
				ordered = append(ordered, m)
			}
		}
		for _, m := range malls {
			if m.ID != sc.SelectedMallID {
				ordered = append(ordered, m)
			}
		}
	}

	var b strings.Builder
	total := 0
	for _, m := range ordered {
		if total >= promptSlotCap {
			break
		}
		vt := slot.VehicleType("")
		if m.ID == sc.SelectedMallID {
			vt = slot.VehicleType(sc.SelectedVehicleType)
		}
		available, err := a.bookingService.FindAvailable(ctx, m.ID, vt, start, end)
		if err != nil {
			logger.L().Warn("failed to snapshot availability", zap.Int64("mall_id", m.ID), zap.Error(err))
			continue
		}
		if len(available) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\nSlots at %s:\n", m.Name)
		for _, sl := range available {
			if total >= promptSlotCap {
				break
			}
			fmt.Fprintf(&b, "* Slot ID: %d, Mall: %s, Type: %s, Number: %s, Rate: ₹%g/hour\n",
				sl.ID, m.Name, sl.VehicleType, sl.SlotNumber, sl.HourlyRate)
			total++
		}
	}
	if total == 0 {
		return "No slots available currently."
	}
	return b.String()
}

// bookingWindow resolves the session's time phrase into a concrete interval.
// Without a phrase it uses the current time rounded to the hour; a resolved
// start already in the past is clamped the same way.
func (a *Agent) bookingWindow(sc *SessionContext) (time.Time, time.Time) {
	now := a.now()
	if sc.SelectedTimePeriod == "" {
		start := roundToHour(now)
		return start, start.Add(2 * time.Hour)
	}

	start, end := ResolveTimePhrase(sc.SelectedTimePeriod, now)
	if start.Before(now) {
		duration := end.Sub(start)
		start = roundToHour(now)
		end = start.Add(duration)
	}
	return start, end
}

func (a *Agent) saveContext(ctx context.Context, userID string, sc *SessionContext) {
	if err := a.store.SetContext(ctx, userID, sc); err != nil {
		logger.L().Warn("failed to save session context", zap.String("user_id", userID), zap.Error(err))
	}
}

func mallListPrompt(malls []*mall.Mall) string {
	var b strings.Builder
	b.WriteString("Available malls:\n")
	for _, m := range malls {
		fmt.Fprintf(&b, "* %s (Mall ID: %d)\n", m.Name, m.ID)
	}
	return b.String()
}

func demoPlate(userID, vehicleType string) string {
	short := userID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("DEMO-%s-%s", short, vehicleType)
}
