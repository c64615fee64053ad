package timeutil

import (
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestFormatLocalDateTime(t *testing.T) {
	instant := time.Date(2026, 3, 9, 8, 5, 7, 0, time.Local)
	got := FormatLocalDateTime(instant)
	if got != "2026-03-09T08:05:07" {
		t.Fatalf("unexpected format: %s", got)
	}
}

func TestFormatLocalDateTimeDropsSubSecond(t *testing.T) {
	instant := time.Date(2026, 3, 9, 8, 5, 7, 123456789, time.Local)
	got := FormatLocalDateTime(instant)
	if got != "2026-03-09T08:05:07" {
		t.Fatalf("expected milliseconds dropped, got %s", got)
	}
}

func TestFormatLocalDateTimeShape(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}$`)
	instants := []time.Time{
		time.Date(2024, 2, 29, 23, 59, 59, 0, time.Local),
		time.Date(2026, 12, 31, 0, 0, 0, 0, time.Local),
		time.Date(2026, 1, 1, 12, 30, 0, 500, time.Local),
	}
	for _, instant := range instants {
		got := FormatLocalDateTime(instant)
		if !pattern.MatchString(got) {
			t.Errorf("output %q does not match local date-time pattern", got)
		}
	}
}

func TestFormatLocalDateTimeRoundTrip(t *testing.T) {
	instant := time.Date(2026, 7, 14, 16, 45, 30, 0, time.Local)
	formatted := FormatLocalDateTime(instant)

	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", formatted, time.Local)
	if err != nil {
		t.Fatalf("round-trip parse failed: %v", err)
	}
	if !parsed.Equal(instant) {
		t.Fatalf("round-trip mismatch: %v != %v", parsed, instant)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		input  string
		hour   int
		minute int
	}{
		{"08:00", 8, 0},
		{"8:00", 8, 0},
		{"13:30", 13, 30},
		{"0:05", 0, 5},
		{"23:59", 23, 59},
	}

	for _, tt := range tests {
		hour, minute, err := ParseClock(tt.input)
		if err != nil {
			t.Errorf("ParseClock(%q) error: %v", tt.input, err)
			continue
		}
		if hour != tt.hour || minute != tt.minute {
			t.Errorf("ParseClock(%q) = %d:%d, want %d:%d", tt.input, hour, minute, tt.hour, tt.minute)
		}
	}
}

func TestParseClockInvalid(t *testing.T) {
	inputs := []string{
		"",
		"08",
		"08:00:00",
		"8h30",
		"24:00",
		"12:60",
		"ab:cd",
		"12:5",
		"123:00",
		"-1:00",
	}

	for _, input := range inputs {
		if _, _, err := ParseClock(input); !errors.Is(err, ErrInvalidClock) {
			t.Errorf("ParseClock(%q) expected ErrInvalidClock, got %v", input, err)
		}
	}
}
