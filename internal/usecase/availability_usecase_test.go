package usecase

import (
	"testing"
	"time"

	"vetclinic-booking/internal/domain/entity"
	"vetclinic-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

func daySlots(t *testing.T, hours schedule.BusinessHours) []schedule.TimeSlot {
	t.Helper()
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local)
	slots, err := schedule.GenerateDaySlots(day, hours)
	if err != nil {
		t.Fatalf("GenerateDaySlots: %v", err)
	}
	return slots
}

func appointmentAt(hour, minute, duration int) entity.Appointment {
	return entity.Appointment{
		ID:              uuid.New(),
		StartsAt:        time.Date(2026, time.March, 10, hour, minute, 0, 0, time.Local),
		DurationMinutes: duration,
		Status:          entity.AppointmentStatusConfirmed,
	}
}

func TestFilterBookedSlotsNoAppointments(t *testing.T) {
	slots := daySlots(t, schedule.DefaultBusinessHours())

	free := filterBookedSlots(slots, 15, nil)
	if len(free) != len(slots) {
		t.Fatalf("expected all %d slots free, got %d", len(slots), len(free))
	}
}

func TestFilterBookedSlotsExactMatch(t *testing.T) {
	slots := daySlots(t, schedule.DefaultBusinessHours())
	booked := appointmentAt(9, 0, 15)

	free := filterBookedSlots(slots, 15, []entity.Appointment{booked})
	if len(free) != len(slots)-1 {
		t.Fatalf("expected exactly one slot removed, got %d of %d", len(free), len(slots))
	}
	for _, slot := range free {
		if slot.StartsAt.Equal(booked.StartsAt) {
			t.Fatalf("booked slot %s still present", slot.StartsAt)
		}
	}
}

func TestFilterBookedSlotsLongAppointmentCoversSeveralSlots(t *testing.T) {
	slots := daySlots(t, schedule.DefaultBusinessHours())

	// A 60-minute visit starting 09:00 blocks the 09:00-10:00 grid
	free := filterBookedSlots(slots, 15, []entity.Appointment{appointmentAt(9, 0, 60)})
	if len(free) != len(slots)-4 {
		t.Fatalf("expected four 15-minute slots removed, got %d of %d", len(free), len(slots))
	}
}

func TestFilterBookedSlotsPartialOverlap(t *testing.T) {
	slots := daySlots(t, schedule.DefaultBusinessHours())

	// A visit straddling two slots blocks both of them
	free := filterBookedSlots(slots, 15, []entity.Appointment{appointmentAt(9, 10, 15)})
	if len(free) != len(slots)-2 {
		t.Fatalf("expected two slots removed, got %d of %d", len(free), len(slots))
	}
}

func TestFilterBookedSlotsAdjacentDoesNotBlock(t *testing.T) {
	slots := daySlots(t, schedule.DefaultBusinessHours())

	// Appointment ending exactly at 09:00 leaves the 09:00 slot free
	free := filterBookedSlots(slots, 15, []entity.Appointment{appointmentAt(8, 45, 15)})
	removed := len(slots) - len(free)
	if removed != 1 {
		t.Fatalf("expected only the 08:45 slot removed, got %d removed", removed)
	}
	found := false
	nine := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.Local)
	for _, slot := range free {
		if slot.StartsAt.Equal(nine) {
			found = true
		}
	}
	if !found {
		t.Fatal("09:00 slot should remain free after an appointment ending 09:00")
	}
}
