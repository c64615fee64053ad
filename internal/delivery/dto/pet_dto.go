package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePetRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Species     string `json:"species" validate:"required,max=50"`
	Breed       string `json:"breed" validate:"omitempty,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
}

type UpdatePetRequest struct {
	Name        string `json:"name" validate:"omitempty,min=1,max=100"`
	Species     string `json:"species" validate:"omitempty,max=50"`
	Breed       string `json:"breed" validate:"omitempty,max=100"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
}

// Response DTOs

type PetResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Breed       string    `json:"breed,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PetListResponse struct {
	Pets  []PetResponse `json:"pets"`
	Total int           `json:"total"`
}
