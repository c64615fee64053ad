package dto

import "github.com/google/uuid"

// Request DTOs

type UpdateVetRequest struct {
	FullName  string `json:"full_name" validate:"omitempty,min=3,max=255"`
	Specialty string `json:"specialty" validate:"omitempty,max=100"`
	Biography string `json:"biography" validate:"omitempty"`
	IsActive  *bool  `json:"is_active" validate:"omitempty"`
}

// Response DTOs

type VetResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	FullName      string    `json:"full_name"`
	LicenseNumber string    `json:"license_number"`
	Specialty     string    `json:"specialty,omitempty"`
	Biography     string    `json:"biography,omitempty"`
	IsActive      bool      `json:"is_active"`
}

type VetListResponse struct {
	Vets  []VetResponse `json:"vets"`
	Total int           `json:"total"`
}
