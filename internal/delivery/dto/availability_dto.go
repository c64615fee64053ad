package dto

import "github.com/google/uuid"

// Response DTOs

// SlotResponse is one bookable slot rendered for the availability endpoint.
// StartsAt is a local wall-clock timestamp (YYYY-MM-DDTHH:mm:ss, no zone).
type SlotResponse struct {
	StartsAt string `json:"starts_at"`
	Period   string `json:"period"`
}

type DayAvailabilityResponse struct {
	LocationID       uuid.UUID      `json:"location_id"`
	VetID            *uuid.UUID     `json:"vet_id,omitempty"`
	Date             string         `json:"date"`
	SlotDuration     int            `json:"slot_duration_minutes"`
	AvailableMinutes int            `json:"available_minutes"`
	Slots            []SlotResponse `json:"slots"`
}

type CapacityReportResponse struct {
	LocationID       uuid.UUID `json:"location_id"`
	Date             string    `json:"date"`
	AvailableMinutes int       `json:"available_minutes"`
	BookedMinutes    int       `json:"booked_minutes"`
}
