package slot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranraikar/parking-chat-backend/internal/mall"
)

type memSlotRepo struct {
	nextID int64
	slots  map[int64]*Slot
}

func newMemSlotRepo() *memSlotRepo {
	return &memSlotRepo{slots: make(map[int64]*Slot)}
}

func (r *memSlotRepo) Create(_ context.Context, s *Slot) error {
	r.nextID++
	s.ID = r.nextID
	cp := *s
	r.slots[s.ID] = &cp
	return nil
}

func (r *memSlotRepo) GetByID(_ context.Context, id int64) (*Slot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memSlotRepo) List(_ context.Context, _ Filter) ([]*Slot, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (r *memSlotRepo) ListByMall(_ context.Context, mallID int64, vt VehicleType) ([]*Slot, error) {
	var out []*Slot
	for id := int64(1); id <= r.nextID; id++ {
		s, ok := r.slots[id]
		if !ok {
			continue
		}
		if s.MallID == mallID && (vt == "" || s.VehicleType == vt) {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSlotRepo) Rates(_ context.Context, _ int64) ([]*Rate, error) {
	return nil, errors.New("not implemented")
}

func (r *memSlotRepo) Update(_ context.Context, s *Slot) error {
	if _, ok := r.slots[s.ID]; !ok {
		return ErrNotFound
	}
	cp := *s
	r.slots[s.ID] = &cp
	return nil
}

func (r *memSlotRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.slots[id]; !ok {
		return ErrNotFound
	}
	delete(r.slots, id)
	return nil
}

type singleMallService struct {
	m *mall.Mall
}

func (s *singleMallService) Create(_ context.Context, _ mall.CreateMallRequest) (*mall.Mall, error) {
	return nil, errors.New("not implemented")
}

func (s *singleMallService) GetByID(_ context.Context, id int64) (*mall.Mall, error) {
	if s.m != nil && s.m.ID == id {
		return s.m, nil
	}
	return nil, mall.ErrNotFound
}

func (s *singleMallService) List(_ context.Context, _ mall.Filter) ([]*mall.Mall, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (s *singleMallService) All(_ context.Context) ([]*mall.Mall, error) {
	if s.m == nil {
		return nil, nil
	}
	return []*mall.Mall{s.m}, nil
}

func (s *singleMallService) Update(_ context.Context, _ int64, _ mall.UpdateMallRequest) (*mall.Mall, error) {
	return nil, errors.New("not implemented")
}

func (s *singleMallService) Delete(_ context.Context, _ int64) error {
	return errors.New("not implemented")
}

func newSlotService() (Service, *memSlotRepo) {
	repo := newMemSlotRepo()
	svc := NewService(repo, &singleMallService{m: &mall.Mall{ID: 1, Name: "Phoenix Marketcity"}})
	return svc, repo
}

func TestSlotCreate(t *testing.T) {
	svc, _ := newSlotService()

	sl, err := svc.Create(context.Background(), CreateRequest{
		MallID:      1,
		SlotNumber:  " A-01 ",
		Floor:       "1",
		Section:     "A",
		VehicleType: "car",
		HourlyRate:  50,
	})
	require.NoError(t, err)

	assert.Equal(t, "A-01", sl.SlotNumber)
	assert.Equal(t, VehicleCar, sl.VehicleType)
	assert.NotZero(t, sl.ID)
}

func TestSlotCreateValidation(t *testing.T) {
	svc, _ := newSlotService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{MallID: 1, SlotNumber: "  ", VehicleType: "car", HourlyRate: 50})
	assert.ErrorIs(t, err, ErrEmptySlotNumber)

	_, err = svc.Create(ctx, CreateRequest{MallID: 1, SlotNumber: "A-01", VehicleType: "car", HourlyRate: 0})
	assert.ErrorIs(t, err, ErrInvalidRate)

	_, err = svc.Create(ctx, CreateRequest{MallID: 1, SlotNumber: "A-01", VehicleType: "boat", HourlyRate: 50})
	assert.ErrorIs(t, err, ErrInvalidVehicleType)

	_, err = svc.Create(ctx, CreateRequest{MallID: 99, SlotNumber: "A-01", VehicleType: "car", HourlyRate: 50})
	assert.ErrorIs(t, err, ErrInvalidMall)
}

func TestSlotUpdatePartial(t *testing.T) {
	svc, _ := newSlotService()
	ctx := context.Background()

	sl, err := svc.Create(ctx, CreateRequest{
		MallID: 1, SlotNumber: "A-01", VehicleType: "car", HourlyRate: 50,
	})
	require.NoError(t, err)

	rate := 75.0
	updated, err := svc.Update(ctx, sl.ID, UpdateRequest{HourlyRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, 75.0, updated.HourlyRate)
	assert.Equal(t, "A-01", updated.SlotNumber)

	vt := "truck"
	updated, err = svc.Update(ctx, sl.ID, UpdateRequest{VehicleType: &vt})
	require.NoError(t, err)
	assert.Equal(t, VehicleTruck, updated.VehicleType)

	bad := "hovercraft"
	_, err = svc.Update(ctx, sl.ID, UpdateRequest{VehicleType: &bad})
	assert.ErrorIs(t, err, ErrInvalidVehicleType)

	zero := 0.0
	_, err = svc.Update(ctx, sl.ID, UpdateRequest{HourlyRate: &zero})
	assert.ErrorIs(t, err, ErrInvalidRate)
}

func TestParseVehicleType(t *testing.T) {
	vt, err := ParseVehicleType("car")
	require.NoError(t, err)
	assert.Equal(t, VehicleCar, vt)

	vt, err = ParseVehicleType("BIKE")
	require.NoError(t, err)
	assert.Equal(t, VehicleBike, vt)

	_, err = ParseVehicleType("boat")
	assert.ErrorIs(t, err, ErrInvalidVehicleType)
}
