package booking

import (
	"context"
	"errors"
	"time"

	"github.com/kiranraikar/parking-chat-backend/internal/slot"
	"github.com/kiranraikar/parking-chat-backend/internal/vehicle"
)

type CreateRequest struct {
	UserID       string
	SlotID       int64
	LicensePlate string
	StartTime    time.Time
	EndTime      time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Cancel(ctx context.Context, id int64, userID string, isAdmin bool) (*Booking, error)
	Delete(ctx context.Context, id int64, userID string, isAdmin bool) error

	// FindAvailable returns the slots of a mall free for the whole of
	// [start, end), narrowed by vehicle type when given, in catalog order.
	FindAvailable(ctx context.Context, mallID int64, vehicleType slot.VehicleType, start, end time.Time) ([]*slot.Slot, error)
	// SlotStatuses is FindAvailable without the filtering: every slot with
	// its booked flag for the interval.
	SlotStatuses(ctx context.Context, mallID int64, vehicleType slot.VehicleType, start, end time.Time) ([]SlotStatus, error)
}

type service struct {
	repo           Repository
	slotService    slot.Service
	vehicleService vehicle.Service
}

func NewService(repo Repository, slotService slot.Service, vehicleService vehicle.Service) Service {
	return &service{
		repo:           repo,
		slotService:    slotService,
		vehicleService: vehicleService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}

	sl, err := s.slotService.GetByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, slot.ErrNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	// Pre-check before entering the transaction, so the common conflict case
	// fails cheaply. CreateConfirmed re-checks under the slot lock.
	hasOverlap, err := s.repo.HasOverlap(ctx, req.SlotID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if hasOverlap {
		return nil, ErrTimeConflict
	}

	v, err := s.vehicleService.FindOrCreate(ctx, req.UserID, req.LicensePlate, string(sl.VehicleType))
	if err != nil {
		return nil, err
	}

	duration := req.EndTime.Sub(req.StartTime)
	b := &Booking{
		ParkingSlotID: sl.ID,
		SlotNumber:    sl.SlotNumber,
		MallID:        sl.MallID,
		UserID:        req.UserID,
		VehicleID:     v.ID,
		LicensePlate:  v.LicensePlate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		TotalAmount:   sl.HourlyRate * duration.Hours(),
	}

	if err := s.repo.CreateConfirmed(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id int64, userID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && b.UserID != userID {
		return nil, ErrPermissionDenied
	}
	if b.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled
	return b, nil
}

func (s *service) Delete(ctx context.Context, id int64, userID string, isAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && b.UserID != userID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
