package converter

import (
	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/domain/entity"
)

// ServiceItemToResponse converts a ServiceItem entity to its wire form
func ServiceItemToResponse(item *entity.ServiceItem) *dto.ServiceItemResponse {
	if item == nil {
		return nil
	}

	return &dto.ServiceItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price,
		DurationMinutes: item.DurationMinutes,
		IsActive:        item.IsActive,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

// ServiceItemsToResponses converts a slice of ServiceItem entities to DTOs
func ServiceItemsToResponses(items []entity.ServiceItem) []dto.ServiceItemResponse {
	responses := make([]dto.ServiceItemResponse, len(items))
	for i := range items {
		responses[i] = *ServiceItemToResponse(&items[i])
	}
	return responses
}
