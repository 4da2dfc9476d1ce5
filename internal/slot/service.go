package slot

import (
	"context"
	"strings"

	"github.com/kiranraikar/parking-chat-backend/internal/mall"
)

type CreateRequest struct {
	MallID      int64
	SlotNumber  string
	Floor       string
	Section     string
	VehicleType string
	HourlyRate  float64
}

type UpdateRequest struct {
	SlotNumber  *string
	Floor       *string
	Section     *string
	VehicleType *string
	HourlyRate  *float64
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Slot, error)
	GetByID(ctx context.Context, id int64) (*Slot, error)
	List(ctx context.Context, filter Filter) ([]*Slot, int, error)
	ListByMall(ctx context.Context, mallID int64, vehicleType VehicleType) ([]*Slot, error)
	Rates(ctx context.Context, mallID int64) ([]*Rate, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Slot, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo        Repository
	mallService mall.Service
}

func NewService(repo Repository, mallService mall.Service) Service {
	return &service{
		repo:        repo,
		mallService: mallService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Slot, error) {
	if strings.TrimSpace(req.SlotNumber) == "" {
		return nil, ErrEmptySlotNumber
	}
	if req.HourlyRate <= 0 {
		return nil, ErrInvalidRate
	}
	vt, err := ParseVehicleType(req.VehicleType)
	if err != nil {
		return nil, err
	}

	// Ensure the mall exists before inserting.
	if _, err := s.mallService.GetByID(ctx, req.MallID); err != nil {
		return nil, ErrInvalidMall
	}

	sl := &Slot{
		MallID:      req.MallID,
		SlotNumber:  strings.TrimSpace(req.SlotNumber),
		Floor:       strings.TrimSpace(req.Floor),
		Section:     strings.TrimSpace(req.Section),
		VehicleType: vt,
		HourlyRate:  req.HourlyRate,
	}
	if err := s.repo.Create(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Slot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Slot, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListByMall(ctx context.Context, mallID int64, vehicleType VehicleType) ([]*Slot, error) {
	return s.repo.ListByMall(ctx, mallID, vehicleType)
}

func (s *service) Rates(ctx context.Context, mallID int64) ([]*Rate, error) {
	return s.repo.Rates(ctx, mallID)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Slot, error) {
	sl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.SlotNumber != nil {
		if strings.TrimSpace(*req.SlotNumber) == "" {
			return nil, ErrEmptySlotNumber
		}
		sl.SlotNumber = strings.TrimSpace(*req.SlotNumber)
	}
	if req.Floor != nil {
		sl.Floor = strings.TrimSpace(*req.Floor)
	}
	if req.Section != nil {
		sl.Section = strings.TrimSpace(*req.Section)
	}
	if req.VehicleType != nil {
		vt, err := ParseVehicleType(*req.VehicleType)
		if err != nil {
			return nil, err
		}
		sl.VehicleType = vt
	}
	if req.HourlyRate != nil {
		if *req.HourlyRate <= 0 {
			return nil, ErrInvalidRate
		}
		sl.HourlyRate = *req.HourlyRate
	}

	if err := s.repo.Update(ctx, sl); err != nil {
		return nil, err
	}
	return sl, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
