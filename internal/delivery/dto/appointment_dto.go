package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PetID         uuid.UUID  `json:"pet_id" validate:"required"`
	VetID         uuid.UUID  `json:"vet_id" validate:"required"`
	LocationID    uuid.UUID  `json:"location_id" validate:"required"`
	ServiceItemID *uuid.UUID `json:"service_item_id" validate:"omitempty"`
	Date          string     `json:"date" validate:"required"`     // Format: YYYY-MM-DD
	StartTime     string     `json:"start_time" validate:"required"` // Format: HH:MM
	Reason        string     `json:"reason" validate:"omitempty"`
}

type RescheduleAppointmentRequest struct {
	Date      string `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime string `json:"start_time" validate:"required"` // Format: HH:MM
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID         `json:"id"`
	Code            string            `json:"code"`
	PetID           uuid.UUID         `json:"pet_id"`
	Pet             *PetResponse      `json:"pet,omitempty"`
	VetID           uuid.UUID         `json:"vet_id"`
	Vet             *VetResponse      `json:"vet,omitempty"`
	LocationID      uuid.UUID         `json:"location_id"`
	Location        *LocationResponse `json:"location,omitempty"`
	ServiceItemID   *uuid.UUID        `json:"service_item_id,omitempty"`
	StartsAt        string            `json:"starts_at"` // Local wall-clock, no zone suffix
	DurationMinutes int               `json:"duration_minutes"`
	Status          string            `json:"status"`
	Reason          string            `json:"reason,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
