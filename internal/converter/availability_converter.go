package converter

import (
	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/domain/schedule"

	"vetclinic-booking/pkg/timeutil"
)

// SlotsToResponses converts generated time slots to their wire form. The
// start instant is serialized as local wall-clock with no zone suffix.
func SlotsToResponses(slots []schedule.TimeSlot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.SlotResponse{
			StartsAt: timeutil.FormatLocalDateTime(slot.StartsAt),
			Period:   string(slot.Period),
		}
	}
	return responses
}
