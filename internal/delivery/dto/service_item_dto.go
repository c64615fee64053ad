package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceItemRequest struct {
	Name            string          `json:"name" validate:"required,min=3,max=255"`
	Description     string          `json:"description" validate:"omitempty"`
	Price           decimal.Decimal `json:"price" validate:"required"`
	DurationMinutes int             `json:"duration_minutes" validate:"required,gte=5,lte=480"`
}

type UpdateServiceItemRequest struct {
	Name            string           `json:"name" validate:"omitempty,min=3,max=255"`
	Description     string           `json:"description" validate:"omitempty"`
	Price           *decimal.Decimal `json:"price" validate:"omitempty"`
	DurationMinutes *int             `json:"duration_minutes" validate:"omitempty,gte=5,lte=480"`
	IsActive        *bool            `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type ServiceItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ServiceItemListResponse struct {
	Services []ServiceItemResponse `json:"services"`
	Total    int                   `json:"total"`
}
