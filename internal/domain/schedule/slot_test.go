package schedule

import (
	"errors"
	"testing"
	"time"
)

func countPeriods(slots []TimeSlot) (morning, afternoon int) {
	for _, slot := range slots {
		switch slot.Period {
		case PeriodMorning:
			morning++
		case PeriodAfternoon:
			afternoon++
		}
	}
	return
}

func TestGenerateDaySlotsDefaultWindow(t *testing.T) {
	day := time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)
	hours := BusinessHours{
		StartHour: 8, EndHour: 18,
		Lunch:        &LunchBreak{StartHour: 13, EndHour: 14},
		SlotDuration: 30,
	}

	slots, err := GenerateDaySlots(day, hours)
	if err != nil {
		t.Fatalf("GenerateDaySlots error: %v", err)
	}

	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}

	morning, afternoon := countPeriods(slots)
	if morning != 10 || afternoon != 8 {
		t.Errorf("expected 10 morning + 8 afternoon, got %d + %d", morning, afternoon)
	}

	for _, slot := range slots {
		if slot.StartsAt.Hour() == 13 {
			t.Errorf("slot %s falls inside lunch", slot.StartsAt.Format("15:04"))
		}
	}

	if first := slots[0].StartsAt; first.Hour() != 8 || first.Minute() != 0 {
		t.Errorf("first slot at %s, want 08:00", first.Format("15:04"))
	}
	if last := slots[len(slots)-1].StartsAt; last.Hour() != 17 || last.Minute() != 30 {
		t.Errorf("last slot at %s, want 17:30", last.Format("15:04"))
	}
}

func TestGenerateDaySlotsDurations(t *testing.T) {
	day := time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)

	tests := []struct {
		duration  int
		total     int
		morning   int
		afternoon int
	}{
		{15, 36, 20, 16},
		{30, 18, 10, 8},
		{60, 9, 5, 4},
	}

	for _, tt := range tests {
		hours := BusinessHours{
			StartHour: 8, EndHour: 18,
			Lunch:        &LunchBreak{StartHour: 13, EndHour: 14},
			SlotDuration: tt.duration,
		}

		slots, err := GenerateDaySlots(day, hours)
		if err != nil {
			t.Fatalf("duration %d: %v", tt.duration, err)
		}
		if len(slots) != tt.total {
			t.Errorf("duration %d: expected %d slots, got %d", tt.duration, tt.total, len(slots))
		}
		morning, afternoon := countPeriods(slots)
		if morning != tt.morning || afternoon != tt.afternoon {
			t.Errorf("duration %d: expected %d/%d morning/afternoon, got %d/%d",
				tt.duration, tt.morning, tt.afternoon, morning, afternoon)
		}
	}
}

func TestGenerateDaySlotsCountMatchesWindow(t *testing.T) {
	// With no lunch, the count follows directly from the window size.
	day := time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)
	hours := BusinessHours{StartHour: 9, StartMinute: 15, EndHour: 16, EndMinute: 45, SlotDuration: 20}

	slots, err := GenerateDaySlots(day, hours)
	if err != nil {
		t.Fatalf("GenerateDaySlots error: %v", err)
	}

	want := hours.AvailableMinutes() / hours.SlotDuration // 450 / 20 = 22
	if len(slots) != want {
		t.Fatalf("expected %d slots, got %d", want, len(slots))
	}
}

func TestGenerateDaySlotsNoLunchAllMorning(t *testing.T) {
	day := time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)
	hours := BusinessHours{StartHour: 8, EndHour: 20, SlotDuration: 60}

	slots, err := GenerateDaySlots(day, hours)
	if err != nil {
		t.Fatalf("GenerateDaySlots error: %v", err)
	}
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(slots))
	}

	// Every slot is labeled morning when no lunch boundary exists, even the
	// evening ones. Display code depends on this.
	for _, slot := range slots {
		if slot.Period != PeriodMorning {
			t.Errorf("slot %s labeled %s, want morning", slot.StartsAt.Format("15:04"), slot.Period)
		}
	}
}

func TestGenerateDaySlotsOffsetMinutes(t *testing.T) {
	day := time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)
	hours := BusinessHours{
		StartHour: 8, StartMinute: 30,
		EndHour: 17, EndMinute: 30,
		Lunch:        &LunchBreak{StartHour: 12, StartMinute: 30, EndHour: 13, EndMinute: 30},
		SlotDuration: 30,
	}

	slots, err := GenerateDaySlots(day, hours)
	if err != nil {
		t.Fatalf("GenerateDaySlots error: %v", err)
	}

	// Boundaries anchor to the configured start minute, not :00.
	if first := slots[0].StartsAt; first.Hour() != 8 || first.Minute() != 30 {
		t.Errorf("first slot at %s, want 08:30", first.Format("15:04"))
	}

	// The first afternoon slot begins exactly at lunch end.
	var firstAfternoon *TimeSlot
	for i := range slots {
		if slots[i].Period == PeriodAfternoon {
			firstAfternoon = &slots[i]
			break
		}
	}
	if firstAfternoon == nil {
		t.Fatal("expected afternoon slots")
	}
	if firstAfternoon.StartsAt.Hour() != 13 || firstAfternoon.StartsAt.Minute() != 30 {
		t.Errorf("first afternoon slot at %s, want 13:30", firstAfternoon.StartsAt.Format("15:04"))
	}
}

func TestGenerateDaySlotsUnalignedLunchSkipsOverlaps(t *testing.T) {
	day := time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)
	hours := BusinessHours{
		StartHour: 8, EndHour: 18,
		Lunch:        &LunchBreak{StartHour: 12, StartMinute: 45, EndHour: 13, EndMinute: 45},
		SlotDuration: 30,
	}

	slots, err := GenerateDaySlots(day, hours)
	if err != nil {
		t.Fatalf("GenerateDaySlots error: %v", err)
	}

	// 12:30 overlaps the front of lunch and 13:30 overlaps the back; both are
	// skipped, never shortened.
	for _, slot := range slots {
		from := slot.StartsAt.Hour()*60 + slot.StartsAt.Minute()
		if from < 12*60+45+60 && from+30 > 12*60+45 {
			t.Errorf("slot %s overlaps lunch", slot.StartsAt.Format("15:04"))
		}
	}
}

func TestGenerateDaySlotsDegenerateWindows(t *testing.T) {
	day := time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)

	tests := []struct {
		name  string
		hours BusinessHours
	}{
		{
			name:  "window shorter than slot",
			hours: BusinessHours{StartHour: 10, EndHour: 10, EndMinute: 15, SlotDuration: 30},
		},
		{
			name:  "zero-length window",
			hours: BusinessHours{StartHour: 10, EndHour: 10, SlotDuration: 15},
		},
		{
			name:  "end before start",
			hours: BusinessHours{StartHour: 17, EndHour: 9, SlotDuration: 30},
		},
		{
			name: "lunch covers entire window",
			hours: BusinessHours{
				StartHour: 13, EndHour: 14,
				Lunch:        &LunchBreak{StartHour: 13, EndHour: 14},
				SlotDuration: 15,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := GenerateDaySlots(day, tt.hours)
			if err != nil {
				t.Fatalf("GenerateDaySlots error: %v", err)
			}
			if len(slots) != 0 {
				t.Errorf("expected no slots, got %d", len(slots))
			}
		})
	}
}

func TestGenerateDaySlotsInvalidDuration(t *testing.T) {
	day := time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)

	for _, duration := range []int{0, -30} {
		hours := BusinessHours{StartHour: 8, EndHour: 18, SlotDuration: duration}
		if _, err := GenerateDaySlots(day, hours); !errors.Is(err, ErrInvalidSlotDuration) {
			t.Errorf("duration %d: expected ErrInvalidSlotDuration, got %v", duration, err)
		}
	}
}

func TestGenerateDaySlotsKeepsDate(t *testing.T) {
	days := []time.Time{
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.Local), // leap day
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local),
	}
	hours := DefaultBusinessHours()

	for _, day := range days {
		slots, err := GenerateDaySlots(day, hours)
		if err != nil {
			t.Fatalf("GenerateDaySlots error: %v", err)
		}
		for _, slot := range slots {
			y, m, d := slot.StartsAt.Date()
			wy, wm, wd := day.Date()
			if y != wy || m != wm || d != wd {
				t.Errorf("slot date %04d-%02d-%02d drifted from input %04d-%02d-%02d", y, m, d, wy, wm, wd)
			}
			if slot.StartsAt.Second() != 0 {
				t.Errorf("slot %v carries seconds", slot.StartsAt)
			}
		}
	}
}

func TestGenerateDaySlotsDeterministic(t *testing.T) {
	day := time.Date(2026, 5, 11, 0, 0, 0, 0, time.Local)
	hours := DefaultBusinessHours()

	first, err := GenerateDaySlots(day, hours)
	if err != nil {
		t.Fatalf("GenerateDaySlots error: %v", err)
	}
	second, err := GenerateDaySlots(day, hours)
	if err != nil {
		t.Fatalf("GenerateDaySlots error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("length mismatch: %d != %d", len(first), len(second))
	}
	for i := range first {
		if !first[i].StartsAt.Equal(second[i].StartsAt) || first[i].Period != second[i].Period {
			t.Fatalf("slot %d differs between runs", i)
		}
	}

	for i := 1; i < len(first); i++ {
		if !first[i-1].StartsAt.Before(first[i].StartsAt) {
			t.Fatalf("slots out of order at index %d", i)
		}
	}
}
