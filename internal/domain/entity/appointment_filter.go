package entity

import "github.com/google/uuid"

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	LocationID uuid.UUID // Zero value means any location
	VetID      uuid.UUID // Zero value means any vet
	StartAt    string    // Format: YYYY-MM-DD
	EndAt      string    // Format: YYYY-MM-DD
	Status     string    // Filter by appointment status
}
