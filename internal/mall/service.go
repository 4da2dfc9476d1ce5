package mall

import (
	"context"
	"strings"
)

// CreateMallRequest carries data to create a mall.
type CreateMallRequest struct {
	Name          string
	Address       string
	City          string
	State         string
	ZipCode       string
	ContactNumber string
	Email         string
	OpeningTime   string
	ClosingTime   string
}

// UpdateMallRequest carries data for partial updates.
type UpdateMallRequest struct {
	Name          *string
	Address       *string
	City          *string
	State         *string
	ZipCode       *string
	ContactNumber *string
	Email         *string
	OpeningTime   *string
	ClosingTime   *string
}

type Service interface {
	Create(ctx context.Context, req CreateMallRequest) (*Mall, error)
	GetByID(ctx context.Context, id int64) (*Mall, error)
	List(ctx context.Context, filter Filter) ([]*Mall, int, error)
	All(ctx context.Context) ([]*Mall, error)
	Update(ctx context.Context, id int64, req UpdateMallRequest) (*Mall, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateMallRequest) (*Mall, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrEmptyName
	}

	m := &Mall{
		Name:          name,
		Address:       strings.TrimSpace(req.Address),
		City:          strings.TrimSpace(req.City),
		State:         strings.TrimSpace(req.State),
		ZipCode:       strings.TrimSpace(req.ZipCode),
		ContactNumber: strings.TrimSpace(req.ContactNumber),
		Email:         strings.TrimSpace(req.Email),
		OpeningTime:   strings.TrimSpace(req.OpeningTime),
		ClosingTime:   strings.TrimSpace(req.ClosingTime),
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Mall, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Mall, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) All(ctx context.Context) ([]*Mall, error) {
	return s.repo.All(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateMallRequest) (*Mall, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		m.Name = name
	}
	if req.Address != nil {
		m.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		m.City = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		m.State = strings.TrimSpace(*req.State)
	}
	if req.ZipCode != nil {
		m.ZipCode = strings.TrimSpace(*req.ZipCode)
	}
	if req.ContactNumber != nil {
		m.ContactNumber = strings.TrimSpace(*req.ContactNumber)
	}
	if req.Email != nil {
		m.Email = strings.TrimSpace(*req.Email)
	}
	if req.OpeningTime != nil {
		m.OpeningTime = strings.TrimSpace(*req.OpeningTime)
	}
	if req.ClosingTime != nil {
		m.ClosingTime = strings.TrimSpace(*req.ClosingTime)
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
