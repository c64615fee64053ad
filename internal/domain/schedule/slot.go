package schedule

import "time"

// Period is a coarse classification of a slot relative to the lunch break.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
)

// TimeSlot is one bookable interval's start instant plus its period label.
// Slots are generated on demand and never persisted.
type TimeSlot struct {
	StartsAt time.Time
	Period   Period
}

// GenerateDaySlots produces the ordered bookable slots for one calendar day.
// The cursor advances in fixed SlotDuration increments anchored at the
// configured start minute; any slot that would overlap the lunch interval is
// skipped entirely. Slots before lunch are labeled morning and slots after
// are afternoon; with no lunch configured every slot is labeled morning,
// which downstream display code relies on.
//
// Emitted slots keep day's year, month and day unchanged, in day's location.
// Degenerate windows yield an empty slice, not an error.
func GenerateDaySlots(day time.Time, hours BusinessHours) ([]TimeSlot, error) {
	if hours.SlotDuration <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	var slots []TimeSlot

	cursor := hours.startMinutes()
	end := hours.endMinutes()

	for cursor+hours.SlotDuration <= end {
		if hours.Lunch != nil && overlapsLunch(cursor, cursor+hours.SlotDuration, hours.Lunch) {
			cursor += hours.SlotDuration
			continue
		}

		period := PeriodMorning
		if hours.Lunch != nil && cursor >= hours.Lunch.startMinutes() {
			period = PeriodAfternoon
		}

		slots = append(slots, TimeSlot{
			StartsAt: time.Date(day.Year(), day.Month(), day.Day(), cursor/60, cursor%60, 0, 0, day.Location()),
			Period:   period,
		})

		cursor += hours.SlotDuration
	}

	return slots, nil
}

// overlapsLunch reports whether the half-open slot [from, to) intersects the
// half-open lunch interval at all. Partial overlaps count.
func overlapsLunch(from, to int, lunch *LunchBreak) bool {
	return from < lunch.endMinutes() && to > lunch.startMinutes()
}
