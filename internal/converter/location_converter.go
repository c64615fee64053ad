package converter

import (
	"fmt"

	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/domain/entity"
	"vetclinic-booking/internal/domain/schedule"
)

// formatClock renders an hour/minute pair as a zero-padded HH:MM string
func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// BusinessHoursToResponse converts a resolved schedule configuration to its
// wire form. isDefault marks configurations that came from the fallback
// rather than a stored override.
func BusinessHoursToResponse(hours schedule.BusinessHours, isDefault bool) *dto.LocationHoursResponse {
	response := &dto.LocationHoursResponse{
		OpenTime:     formatClock(hours.StartHour, hours.StartMinute),
		CloseTime:    formatClock(hours.EndHour, hours.EndMinute),
		SlotDuration: hours.SlotDuration,
		IsDefault:    isDefault,
	}

	if hours.Lunch != nil {
		response.LunchStart = formatClock(hours.Lunch.StartHour, hours.Lunch.StartMinute)
		response.LunchEnd = formatClock(hours.Lunch.EndHour, hours.Lunch.EndMinute)
	}

	return response
}

// LocationToResponse converts a Location entity to LocationResponse DTO
func LocationToResponse(location *entity.Location) *dto.LocationResponse {
	if location == nil {
		return nil
	}

	response := &dto.LocationResponse{
		ID:        location.ID,
		Name:      location.Name,
		Address:   location.Address,
		Phone:     location.Phone,
		IsActive:  location.IsActive,
		CreatedAt: location.CreatedAt,
		UpdatedAt: location.UpdatedAt,
	}

	if location.Hours != nil {
		response.Hours = BusinessHoursToResponse(location.Hours.BusinessHours(), false)
	} else {
		response.Hours = BusinessHoursToResponse(schedule.DefaultBusinessHours(), true)
	}

	return response
}

// LocationsToResponses converts a slice of Location entities to DTOs
func LocationsToResponses(locations []entity.Location) []dto.LocationResponse {
	responses := make([]dto.LocationResponse, len(locations))
	for i := range locations {
		responses[i] = *LocationToResponse(&locations[i])
	}
	return responses
}
