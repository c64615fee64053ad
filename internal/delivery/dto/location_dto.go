package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateLocationRequest struct {
	Name    string `json:"name" validate:"required,min=3,max=255"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
}

type UpdateLocationRequest struct {
	Name     string `json:"name" validate:"omitempty,min=3,max=255"`
	Address  string `json:"address" validate:"omitempty"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
	IsActive *bool  `json:"is_active" validate:"omitempty"`
}

// UpdateLocationHoursRequest replaces a location's business-hours override.
/// Times use HH:MM strings; lunch fields are both empty or both set.
type UpdateLocationHoursRequest struct {
	OpenTime     string `json:"open_time" validate:"required"`  // Format: HH:MM
	CloseTime    string `json:"close_time" validate:"required"` // Format: HH:MM
	LunchStart   string `json:"lunch_start" validate:"omitempty"`
	LunchEnd     string `json:"lunch_end" validate:"omitempty"`
	SlotDuration int    `json:"slot_duration_minutes" validate:"required,gte=5,lte=480"`
}

// Response DTOs

type LocationHoursResponse struct {
	OpenTime     string `json:"open_time"`
	CloseTime    string `json:"close_time"`
	LunchStart   string `json:"lunch_start,omitempty"`
	LunchEnd     string `json:"lunch_end,omitempty"`
	SlotDuration int    `json:"slot_duration_minutes"`
	IsDefault    bool   `json:"is_default"`
}

type LocationResponse struct {
	ID        uuid.UUID              `json:"id"`
	Name      string                 `json:"name"`
	Address   string                 `json:"address"`
	Phone     string                 `json:"phone,omitempty"`
	IsActive  bool                   `json:"is_active"`
	Hours     *LocationHoursResponse `json:"hours,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
	Total     int                `json:"total"`
}
