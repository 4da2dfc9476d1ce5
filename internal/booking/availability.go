package booking

import (
	"context"
	"time"

	"github.com/kiranraikar/parking-chat-backend/internal/slot"
)

// SlotStatus pairs a slot with whether it is booked for a given interval.
type SlotStatus struct {
	Slot   *slot.Slot
	Booked bool
}

func (s *service) SlotStatuses(ctx context.Context, mallID int64, vehicleType slot.VehicleType, start, end time.Time) ([]SlotStatus, error) {
	slots, err := s.slotService.ListByMall(ctx, mallID, vehicleType)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.BookedSlotIDs(ctx, mallID, start, end)
	if err != nil {
		return nil, err
	}

	statuses := make([]SlotStatus, len(slots))
	for i, sl := range slots {
		statuses[i] = SlotStatus{Slot: sl, Booked: booked[sl.ID]}
	}
	return statuses, nil
}

func (s *service) FindAvailable(ctx context.Context, mallID int64, vehicleType slot.VehicleType, start, end time.Time) ([]*slot.Slot, error) {
	statuses, err := s.SlotStatuses(ctx, mallID, vehicleType, start, end)
	if err != nil {
		return nil, err
	}

	var available []*slot.Slot
	for _, st := range statuses {
		if !st.Booked {
			available = append(available, st.Slot)
		}
	}
	return available, nil
}
