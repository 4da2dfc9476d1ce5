package http

import (
	"time"

	"github.com/kiranraikar/parking-chat-backend/internal/mall"
)

type MallResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	ZipCode       string    `json:"zip_code"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	OpeningTime   string    `json:"opening_time"`
	ClosingTime   string    `json:"closing_time"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewMallResponse(m *mall.Mall) MallResponse {
	return MallResponse{
		ID:            m.ID,
		Name:          m.Name,
		Address:       m.Address,
		City:          m.City,
		State:         m.State,
		ZipCode:       m.ZipCode,
		ContactNumber: m.ContactNumber,
		Email:         m.Email,
		OpeningTime:   m.OpeningTime,
		ClosingTime:   m.ClosingTime,
		CreatedAt:     m.CreatedAt,
	}
}

type CreateMallRequest struct {
	Name          string `json:"name" binding:"required"`
	Address       string `json:"address" binding:"required"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	ContactNumber string `json:"contact_number"`
	Email         string `json:"email" binding:"omitempty,email"`
	OpeningTime   string `json:"opening_time"`
	ClosingTime   string `json:"closing_time"`
}

type UpdateMallRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	ZipCode       *string `json:"zip_code"`
	ContactNumber *string `json:"contact_number"`
	Email         *string `json:"email" binding:"omitempty,email"`
	OpeningTime   *string `json:"opening_time"`
	ClosingTime   *string `json:"closing_time"`
}
