package schedule

import (
	"errors"
	"time"
)

var (
	// ErrInvalidSlotDuration is returned when a configuration carries a
	// non-positive slot duration. Generating slots with such a duration
	// would never terminate, so it is rejected eagerly.
	ErrInvalidSlotDuration = errors.New("slot duration must be a positive number of minutes")

	// ErrInvalidClockField is returned when an hour or minute field is out of range.
	ErrInvalidClockField = errors.New("clock field out of range")
)

// BusinessHours describes one day's operating window for a clinic location:
// an opening instant, a closing instant (exclusive), an optional lunch break,
// and the granularity of bookable slots. It is a plain value; copies are
// independent and safe to share across goroutines.
type BusinessHours struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int

	// Lunch is the midday interval during which no slots are offered.
	// Nil means the location takes no lunch break.
	Lunch *LunchBreak

	// SlotDuration is the length of one bookable slot in minutes.
	SlotDuration int
}

// LunchBreak is a half-open [start, end) interval within the business window.
type LunchBreak struct {
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int
}

// DefaultBusinessHours returns the fallback configuration used when a
// location has no stored override: 08:00-18:00, lunch 13:00-14:00,
// 15-minute slots.
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		StartHour:    8,
		StartMinute:  0,
		EndHour:      18,
		EndMinute:    0,
		Lunch:        &LunchBreak{StartHour: 13, StartMinute: 0, EndHour: 14, EndMinute: 0},
		SlotDuration: 15,
	}
}

// Validate checks that the configuration can be handed to the slot generator.
// Degenerate but well-formed windows (zero-length day, lunch covering the
// whole window) are legal and simply yield no slots.
func (h BusinessHours) Validate() error {
	if h.SlotDuration <= 0 {
		return ErrInvalidSlotDuration
	}

	if !validClock(h.StartHour, h.StartMinute) || !validClock(h.EndHour, h.EndMinute) {
		return ErrInvalidClockField
	}

	if h.Lunch != nil {
		if !validClock(h.Lunch.StartHour, h.Lunch.StartMinute) || !validClock(h.Lunch.EndHour, h.Lunch.EndMinute) {
			return ErrInvalidClockField
		}
	}

	return nil
}

func validClock(hour, minute int) bool {
	return hour >= 0 && hour <= 23 && minute >= 0 && minute <= 59
}

// AvailableMinutes returns the number of bookable minutes in the day: the
// business window minus the lunch window. The configuration is assumed
// well-formed; a malformed one produces a number the slot generator turns
// into zero slots anyway.
func (h BusinessHours) AvailableMinutes() int {
	total := h.endMinutes() - h.startMinutes()
	if h.Lunch != nil {
		total -= h.Lunch.endMinutes() - h.Lunch.startMinutes()
	}
	return total
}

// IsOpenAt reports whether t's time of day falls inside the business window.
// The window is half-open: the opening instant and the first post-lunch
// instant are open, the closing instant and the lunch-start instant are not.
func (h BusinessHours) IsOpenAt(t time.Time) bool {
	minutes := t.Hour()*60 + t.Minute()

	if minutes < h.startMinutes() || minutes >= h.endMinutes() {
		return false
	}

	if h.Lunch != nil && minutes >= h.Lunch.startMinutes() && minutes < h.Lunch.endMinutes() {
		return false
	}

	return true
}

func (h BusinessHours) startMinutes() int {
	return h.StartHour*60 + h.StartMinute
}

func (h BusinessHours) endMinutes() int {
	return h.EndHour*60 + h.EndMinute
}

func (l LunchBreak) startMinutes() int {
	return l.StartHour*60 + l.StartMinute
}

func (l LunchBreak) endMinutes() int {
	return l.EndHour*60 + l.EndMinute
}
