package converter

import (
	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/domain/entity"
	"vetclinic-booking/pkg/timeutil"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its wire form
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:              appointment.ID,
		Code:            appointment.Code,
		PetID:           appointment.PetID,
		VetID:           appointment.VetID,
		LocationID:      appointment.LocationID,
		ServiceItemID:   appointment.ServiceItemID,
		StartsAt:        timeutil.FormatLocalDateTime(appointment.StartsAt),
		DurationMinutes: appointment.DurationMinutes,
		Status:          string(appointment.Status),
		Reason:          appointment.Reason,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}

	if appointment.Pet.ID != uuid.Nil {
		response.Pet = PetToResponse(&appointment.Pet)
	}
	if appointment.Vet.UserID != uuid.Nil {
		response.Vet = VetProfileToResponse(&appointment.Vet)
	}
	if appointment.Location.ID != uuid.Nil {
		response.Location = LocationToResponse(&appointment.Location)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}
