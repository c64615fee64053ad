package converter

import (
	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/domain/entity"
)

// VetProfileToResponse converts a VetProfile entity to VetResponse DTO
func VetProfileToResponse(profile *entity.VetProfile) *dto.VetResponse {
	if profile == nil {
		return nil
	}

	return &dto.VetResponse{
		ID:            profile.UserID,
		Email:         profile.User.Email,
		FullName:      profile.User.FullName,
		LicenseNumber: profile.LicenseNumber,
		Specialty:     profile.Specialty,
		Biography:     profile.Biography,
		IsActive:      profile.User.IsActive,
	}
}

// VetProfilesToResponses converts a slice of VetProfile entities to DTOs
func VetProfilesToResponses(profiles []entity.VetProfile) []dto.VetResponse {
	responses := make([]dto.VetResponse, len(profiles))
	for i := range profiles {
		responses[i] = *VetProfileToResponse(&profiles[i])
	}
	return responses
}
