package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranraikar/parking-chat-backend/internal/slot"
	"github.com/kiranraikar/parking-chat-backend/internal/vehicle"
)

// memRepo is an in-memory Repository with the same overlap semantics the SQL
// implementation enforces, including the serialized re-check on commit.
type memRepo struct {
	mu       sync.Mutex
	nextID   int64
	rows     []*Booking
	slotMall map[int64]int64
}

func newMemRepo(slotMall map[int64]int64) *memRepo {
	return &memRepo{nextID: 1, slotMall: slotMall}
}

func overlaps(a, b *Booking) bool {
	return a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime)
}

func (r *memRepo) CreateConfirmed(_ context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.slotMall[b.ParkingSlotID]; !ok {
		return ErrSlotNotFound
	}
	for _, existing := range r.rows {
		if existing.ParkingSlotID == b.ParkingSlotID &&
			existing.Status == StatusConfirmed && overlaps(existing, b) {
			return ErrTimeConflict
		}
	}

	b.ID = r.nextID
	r.nextID++
	b.Status = StatusConfirmed
	cp := *b
	r.rows = append(r.rows, &cp)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.rows {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) List(_ context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Booking
	for _, b := range r.rows {
		if filter.UserID != "" && b.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *memRepo) UpdateStatus(_ context.Context, id int64, status Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.rows {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, b := range r.rows {
		if b.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *memRepo) HasOverlap(_ context.Context, slotID int64, start, end time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	probe := &Booking{StartTime: start, EndTime: end}
	for _, b := range r.rows {
		if b.ParkingSlotID == slotID && b.Status == StatusConfirmed && overlaps(b, probe) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo) BookedSlotIDs(_ context.Context, mallID int64, start, end time.Time) (map[int64]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	probe := &Booking{StartTime: start, EndTime: end}
	booked := make(map[int64]bool)
	for _, b := range r.rows {
		if r.slotMall[b.ParkingSlotID] == mallID && b.Status == StatusConfirmed && overlaps(b, probe) {
			booked[b.ParkingSlotID] = true
		}
	}
	return booked, nil
}

type stubSlotService struct {
	slots map[int64]*slot.Slot
}

func (s *stubSlotService) Create(_ context.Context, _ slot.CreateRequest) (*slot.Slot, error) {
	return nil, errors.New("not implemented")
}

func (s *stubSlotService) GetByID(_ context.Context, id int64) (*slot.Slot, error) {
	sl, ok := s.slots[id]
	if !ok {
		return nil, slot.ErrNotFound
	}
	return sl, nil
}

func (s *stubSlotService) List(_ context.Context, _ slot.Filter) ([]*slot.Slot, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *stubSlotService) ListByMall(_ context.Context, mallID int64, vt slot.VehicleType) ([]*slot.Slot, error) {
	// Catalog order is ascending id.
	var out []*slot.Slot
	for id := int64(1); id <= int64(len(s.slots))+10; id++ {
		sl, ok := s.slots[id]
		if !ok {
			continue
		}
		if sl.MallID == mallID && (vt == "" || sl.VehicleType == vt) {
			out = append(out, sl)
		}
	}
	return out, nil
}

func (s *stubSlotService) Rates(_ context.Context, _ int64) ([]*slot.Rate, error) {
	return nil, errors.New("not implemented")
}

func (s *stubSlotService) Update(_ context.Context, _ int64, _ slot.UpdateRequest) (*slot.Slot, error) {
	return nil, errors.New("not implemented")
}

func (s *stubSlotService) Delete(_ context.Context, _ int64) error {
	return errors.New("not implemented")
}

type stubVehicleService struct {
	nextID int64
}

func (s *stubVehicleService) GetByID(_ context.Context, _ int64) (*vehicle.Vehicle, error) {
	return nil, errors.New("not implemented")
}

func (s *stubVehicleService) ListByUser(_ context.Context, _ string) ([]*vehicle.Vehicle, error) {
	return nil, errors.New("not implemented")
}

func (s *stubVehicleService) FindOrCreate(_ context.Context, userID, plate, vehicleType string) (*vehicle.Vehicle, error) {
	s.nextID++
	return &vehicle.Vehicle{
		ID:           s.nextID,
		UserID:       userID,
		LicensePlate: plate,
		VehicleType:  vehicleType,
	}, nil
}

func newTestService() (Service, *memRepo) {
	slots := map[int64]*slot.Slot{
		1: {ID: 1, MallID: 1, SlotNumber: "A-01", VehicleType: slot.VehicleCar, HourlyRate: 50},
		2: {ID: 2, MallID: 1, SlotNumber: "A-02", VehicleType: slot.VehicleCar, HourlyRate: 50},
		3: {ID: 3, MallID: 1, SlotNumber: "B-01", VehicleType: slot.VehicleBike, HourlyRate: 20},
		4: {ID: 4, MallID: 2, SlotNumber: "C-01", VehicleType: slot.VehicleCar, HourlyRate: 60},
	}
	slotMall := make(map[int64]int64, len(slots))
	for id, sl := range slots {
		slotMall[id] = sl.MallID
	}

	repo := newMemRepo(slotMall)
	svc := NewService(repo, &stubSlotService{slots: slots}, &stubVehicleService{})
	return svc, repo
}

var (
	t0 = time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	t2 = t0.Add(2 * time.Hour)
	t4 = t0.Add(4 * time.Hour)
)

func TestCreateComputesAmount(t *testing.T) {
	svc, _ := newTestService()

	b, err := svc.Create(context.Background(), CreateRequest{
		UserID:       "u1",
		SlotID:       1,
		LicensePlate: "KA01AB1234",
		StartTime:    t0,
		EndTime:      t0.Add(90 * time.Minute),
	})
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, "KA01AB1234", b.LicensePlate)
	assert.InDelta(t, 75.0, b.TotalAmount, 0.001) // 50/hour for 1.5 hours
}

func TestCreateRejectsInvalidRange(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateRequest{
		UserID: "u1", SlotID: 1, StartTime: t2, EndTime: t0,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.Create(context.Background(), CreateRequest{
		UserID: "u1", SlotID: 1, StartTime: t0, EndTime: t0,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateUnknownSlot(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateRequest{
		UserID: "u1", SlotID: 99, StartTime: t0, EndTime: t2,
	})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateConflictOnOverlap(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{UserID: "u1", SlotID: 1, StartTime: t0, EndTime: t2})
	require.NoError(t, err)

	tests := []struct {
		name       string
		start, end time.Time
		wantErr    error
	}{
		{"identical interval", t0, t2, ErrTimeConflict},
		{"straddles the start", t0.Add(-time.Hour), t0.Add(time.Hour), ErrTimeConflict},
		{"straddles the end", t2.Add(-time.Hour), t4, ErrTimeConflict},
		{"contained", t0.Add(30 * time.Minute), t2.Add(-30 * time.Minute), ErrTimeConflict},
		{"touching end is free", t2, t4, nil},
		{"touching start is free", t0.Add(-2 * time.Hour), t0, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, CreateRequest{
				UserID: "u2", SlotID: 1, StartTime: tt.start, EndTime: tt.end,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateConcurrentExactlyOneWins(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	const attempts = 10
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, CreateRequest{
				UserID: "u1", SlotID: 2, StartTime: t0, EndTime: t2,
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrTimeConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, repo.rows, 1)
}

func TestFindAvailableScopedToInterval(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{UserID: "u1", SlotID: 1, StartTime: t0, EndTime: t2})
	require.NoError(t, err)

	// During the booked window slot 1 is gone, slot 2 remains.
	available, err := svc.FindAvailable(ctx, 1, slot.VehicleCar, t0, t2)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, int64(2), available[0].ID)

	// A disjoint window sees both car slots again, in catalog order.
	available, err = svc.FindAvailable(ctx, 1, slot.VehicleCar, t2, t4)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, int64(1), available[0].ID)
	assert.Equal(t, int64(2), available[1].ID)

	// No vehicle filter includes the bike slot.
	available, err = svc.FindAvailable(ctx, 1, "", t2, t4)
	require.NoError(t, err)
	assert.Len(t, available, 3)
}

func TestSlotStatuses(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{UserID: "u1", SlotID: 1, StartTime: t0, EndTime: t2})
	require.NoError(t, err)

	statuses, err := svc.SlotStatuses(ctx, 1, slot.VehicleCar, t0, t2)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Booked)
	assert.False(t, statuses[1].Booked)
}

func TestCancel(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{UserID: "u1", SlotID: 1, StartTime: t0, EndTime: t2})
	require.NoError(t, err)

	// Someone else cannot cancel it.
	_, err = svc.Cancel(ctx, b.ID, "u2", false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	cancelled, err := svc.Cancel(ctx, b.ID, "u1", false)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)

	_, err = svc.Cancel(ctx, b.ID, "u1", false)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	// The cancelled interval no longer blocks new bookings.
	_, err = svc.Create(ctx, CreateRequest{UserID: "u2", SlotID: 1, StartTime: t0, EndTime: t2})
	assert.NoError(t, err)
}

func TestCancelAsAdmin(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{UserID: "u1", SlotID: 1, StartTime: t0, EndTime: t2})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, b.ID, "admin", true)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
}

func TestDeleteFreesInterval(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{UserID: "u1", SlotID: 1, StartTime: t0, EndTime: t2})
	require.NoError(t, err)

	err = svc.Delete(ctx, b.ID, "u2", false)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, svc.Delete(ctx, b.ID, "u1", false))
	assert.Empty(t, repo.rows)

	_, err = svc.Create(ctx, CreateRequest{UserID: "u2", SlotID: 1, StartTime: t0, EndTime: t2})
	assert.NoError(t, err)
}
