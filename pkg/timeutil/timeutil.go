package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidClock is returned when a clock string is not in H:MM or HH:MM form.
var ErrInvalidClock = errors.New("invalid clock string, use HH:MM")

// localDateTimeLayout renders a wall-clock instant with no zone suffix and no
// fractional seconds. Consumers must never reinterpret the result as UTC.
const localDateTimeLayout = "2006-01-02T15:04:05"

// FormatLocalDateTime serializes t's wall-clock fields as YYYY-MM-DDTHH:mm:ss.
// Sub-second precision is dropped silently.
func FormatLocalDateTime(t time.Time) string {
	return t.Format(localDateTimeLayout)
}

// ParseClock parses a "HH:MM" (or "H:MM") string into hour and minute.
// Hours must be 0-23 and minutes 0-59; anything else is ErrInvalidClock.
func ParseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	if len(parts[0]) < 1 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	return hour, minute, nil
}
