package vehicle

import (
	"context"
	"errors"
	"strings"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (*Vehicle, error)
	ListByUser(ctx context.Context, userID string) ([]*Vehicle, error)
	// FindOrCreate returns the vehicle registered under plate, creating a
	// minimal record owned by userID when none exists yet. The booking flow
	// uses this so a plate mentioned in chat becomes bookable immediately.
	FindOrCreate(ctx context.Context, userID string, plate string, vehicleType string) (*Vehicle, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id int64) (*Vehicle, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]*Vehicle, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) FindOrCreate(ctx context.Context, userID string, plate string, vehicleType string) (*Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))
	if plate == "" {
		return nil, ErrEmptyPlate
	}

	v, err := s.repo.GetByPlate(ctx, plate)
	if err == nil {
		return v, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	v = &Vehicle{
		UserID:       userID,
		LicensePlate: plate,
		VehicleType:  vehicleType,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}
