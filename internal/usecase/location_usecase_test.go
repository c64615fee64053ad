package usecase

import (
	"errors"
	"strings"
	"testing"

	"vetclinic-booking/internal/delivery/dto"

	"github.com/google/uuid"
)

func TestBuildHoursOverride(t *testing.T) {
	locationID := uuid.New()

	req := &dto.UpdateLocationHoursRequest{
		OpenTime:     "08:30",
		CloseTime:    "17:00",
		LunchStart:   "12:00",
		LunchEnd:     "13:00",
		SlotDuration: 20,
	}

	hours, row, err := buildHoursOverride(locationID, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hours.StartHour != 8 || hours.StartMinute != 30 || hours.EndHour != 17 {
		t.Fatalf("unexpected window: %02d:%02d-%02d:%02d", hours.StartHour, hours.StartMinute, hours.EndHour, hours.EndMinute)
	}
	if hours.Lunch == nil || hours.Lunch.StartHour != 12 || hours.Lunch.EndHour != 13 {
		t.Fatal("lunch break not carried over")
	}
	if row.LocationID != locationID || row.SlotDurationMinutes != 20 {
		t.Fatal("persisted row does not match the request")
	}
}

func TestBuildHoursOverridePartialLunch(t *testing.T) {
	req := &dto.UpdateLocationHoursRequest{
		OpenTime:     "08:00",
		CloseTime:    "17:00",
		LunchStart:   "12:00",
		SlotDuration: 15,
	}

	_, _, err := buildHoursOverride(uuid.New(), req)
	if !errors.Is(err, ErrPartialLunch) {
		t.Fatalf("expected ErrPartialLunch, got %v", err)
	}
}

func TestBuildHoursOverrideBadClock(t *testing.T) {
	req := &dto.UpdateLocationHoursRequest{
		OpenTime:     "8 o'clock",
		CloseTime:    "17:00",
		SlotDuration: 15,
	}

	_, _, err := buildHoursOverride(uuid.New(), req)
	if !errors.Is(err, ErrInvalidClockInput) {
		t.Fatalf("expected ErrInvalidClockInput, got %v", err)
	}
}

func TestBuildHoursOverrideKeepsValidationDetail(t *testing.T) {
	req := &dto.UpdateLocationHoursRequest{
		OpenTime:     "08:00",
		CloseTime:    "17:00",
		SlotDuration: 0,
	}

	_, _, err := buildHoursOverride(uuid.New(), req)
	if !errors.Is(err, ErrInvalidHours) {
		t.Fatalf("expected ErrInvalidHours, got %v", err)
	}

	// The wrapped message must say what was wrong, not just that it was
	if !strings.Contains(err.Error(), "slot duration") {
		t.Fatalf("expected the slot duration detail in %q", err.Error())
	}
}
