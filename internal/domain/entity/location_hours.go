package entity

import (
	"time"

	"vetclinic-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

// LocationHours is the persisted per-location override of the default
// business-hours configuration. A location without a row uses
// schedule.DefaultBusinessHours(). Lunch columns are all null or all set;
// the usecase layer enforces this before writing.
type LocationHours struct {
	ID                  int       `gorm:"primaryKey;autoIncrement" json:"id"`
	LocationID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"location_id"`
	OpenHour            int       `gorm:"not null" json:"open_hour"`
	OpenMinute          int       `gorm:"not null;default:0" json:"open_minute"`
	CloseHour           int       `gorm:"not null" json:"close_hour"`
	CloseMinute         int       `gorm:"not null;default:0" json:"close_minute"`
	LunchStartHour      *int      `json:"lunch_start_hour,omitempty"`
	LunchStartMinute    *int      `json:"lunch_start_minute,omitempty"`
	LunchEndHour        *int      `json:"lunch_end_hour,omitempty"`
	LunchEndMinute      *int      `json:"lunch_end_minute,omitempty"`
	SlotDurationMinutes int       `gorm:"not null;default:15" json:"slot_duration_minutes"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Location Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (LocationHours) TableName() string {
	return "location_hours"
}

// BusinessHours converts the stored row into the scheduling value type.
func (h *LocationHours) BusinessHours() schedule.BusinessHours {
	hours := schedule.BusinessHours{
		StartHour:    h.OpenHour,
		StartMinute:  h.OpenMinute,
		EndHour:      h.CloseHour,
		EndMinute:    h.CloseMinute,
		SlotDuration: h.SlotDurationMinutes,
	}

	if h.LunchStartHour != nil && h.LunchEndHour != nil {
		lunch := &schedule.LunchBreak{
			StartHour: *h.LunchStartHour,
			EndHour:   *h.LunchEndHour,
		}
		if h.LunchStartMinute != nil {
			lunch.StartMinute = *h.LunchStartMinute
		}
		if h.LunchEndMinute != nil {
			lunch.EndMinute = *h.LunchEndMinute
		}
		hours.Lunch = lunch
	}

	return hours
}
