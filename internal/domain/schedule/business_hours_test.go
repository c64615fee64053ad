package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultBusinessHours(t *testing.T) {
	hours := DefaultBusinessHours()

	if hours.StartHour != 8 || hours.StartMinute != 0 {
		t.Errorf("unexpected opening: %02d:%02d", hours.StartHour, hours.StartMinute)
	}
	if hours.EndHour != 18 || hours.EndMinute != 0 {
		t.Errorf("unexpected closing: %02d:%02d", hours.EndHour, hours.EndMinute)
	}
	if hours.Lunch == nil {
		t.Fatal("expected default lunch break")
	}
	if hours.Lunch.StartHour != 13 || hours.Lunch.EndHour != 14 {
		t.Errorf("unexpected lunch: %d-%d", hours.Lunch.StartHour, hours.Lunch.EndHour)
	}
	if hours.SlotDuration != 15 {
		t.Errorf("unexpected slot duration: %d", hours.SlotDuration)
	}
	if err := hours.Validate(); err != nil {
		t.Errorf("default configuration should validate: %v", err)
	}
}

func TestDefaultBusinessHoursIsFreshPerCall(t *testing.T) {
	first := DefaultBusinessHours()
	first.Lunch.StartHour = 12

	second := DefaultBusinessHours()
	if second.Lunch.StartHour != 13 {
		t.Fatal("mutating one default leaked into the next")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		hours   BusinessHours
		wantErr error
	}{
		{
			name:  "default is valid",
			hours: DefaultBusinessHours(),
		},
		{
			name:  "no lunch is valid",
			hours: BusinessHours{StartHour: 9, EndHour: 17, SlotDuration: 30},
		},
		{
			name:    "zero slot duration",
			hours:   BusinessHours{StartHour: 9, EndHour: 17},
			wantErr: ErrInvalidSlotDuration,
		},
		{
			name:    "negative slot duration",
			hours:   BusinessHours{StartHour: 9, EndHour: 17, SlotDuration: -15},
			wantErr: ErrInvalidSlotDuration,
		},
		{
			name:    "hour out of range",
			hours:   BusinessHours{StartHour: 24, EndHour: 17, SlotDuration: 30},
			wantErr: ErrInvalidClockField,
		},
		{
			name:    "minute out of range",
			hours:   BusinessHours{StartHour: 9, StartMinute: 60, EndHour: 17, SlotDuration: 30},
			wantErr: ErrInvalidClockField,
		},
		{
			name: "lunch hour out of range",
			hours: BusinessHours{
				StartHour: 9, EndHour: 17, SlotDuration: 30,
				Lunch: &LunchBreak{StartHour: 25, EndHour: 14},
			},
			wantErr: ErrInvalidClockField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.hours.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestAvailableMinutes(t *testing.T) {
	tests := []struct {
		name  string
		hours BusinessHours
		want  int
	}{
		{
			name:  "default window",
			hours: DefaultBusinessHours(),
			want:  540, // 10h minus 1h lunch
		},
		{
			name:  "no lunch",
			hours: BusinessHours{StartHour: 9, EndHour: 17, SlotDuration: 30},
			want:  480,
		},
		{
			name: "offset minutes",
			hours: BusinessHours{
				StartHour: 8, StartMinute: 30,
				EndHour: 17, EndMinute: 15,
				Lunch:        &LunchBreak{StartHour: 12, StartMinute: 30, EndHour: 13, EndMinute: 30},
				SlotDuration: 15,
			},
			want: 465,
		},
		{
			name:  "zero-length window",
			hours: BusinessHours{StartHour: 10, EndHour: 10, SlotDuration: 15},
			want:  0,
		},
		{
			name: "lunch consumes entire window",
			hours: BusinessHours{
				StartHour: 13, EndHour: 14,
				Lunch:        &LunchBreak{StartHour: 13, EndHour: 14},
				SlotDuration: 15,
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.hours.AvailableMinutes(); got != tt.want {
				t.Errorf("AvailableMinutes() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestIsOpenAtBoundaries(t *testing.T) {
	hours := BusinessHours{
		StartHour: 8, EndHour: 18,
		Lunch:        &LunchBreak{StartHour: 13, EndHour: 14},
		SlotDuration: 30,
	}

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 5, 11, hour, minute, 0, 0, time.Local)
	}

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"before opening", at(7, 59), false},
		{"exactly at opening", at(8, 0), true},
		{"mid morning", at(10, 30), true},
		{"last minute before lunch", at(12, 59), true},
		{"exactly at lunch start", at(13, 0), false},
		{"during lunch", at(13, 30), false},
		{"last minute of lunch", at(13, 59), false},
		{"exactly at lunch end", at(14, 0), true},
		{"mid afternoon", at(16, 15), true},
		{"last minute of day", at(17, 59), true},
		{"exactly at closing", at(18, 0), false},
		{"after closing", at(21, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hours.IsOpenAt(tt.t); got != tt.want {
				t.Errorf("IsOpenAt(%s) = %v, want %v", tt.t.Format("15:04"), got, tt.want)
			}
		})
	}
}

func TestIsOpenAtWithoutLunch(t *testing.T) {
	hours := BusinessHours{StartHour: 8, EndHour: 18, SlotDuration: 30}

	noon := time.Date(2026, 5, 11, 13, 30, 0, 0, time.Local)
	if !hours.IsOpenAt(noon) {
		t.Error("expected midday to be open when no lunch is configured")
	}
}
