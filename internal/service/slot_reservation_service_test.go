package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func reservationDay(hour, minute int) time.Time {
	return time.Date(2030, time.June, 12, hour, minute, 0, 0, time.Local)
}

func TestReservationCellsCoverWholeWindow(t *testing.T) {
	// A 60-minute visit spans twelve 5-minute cells
	cells := reservationCells(reservationDay(9, 0), 60)
	if len(cells) != 12 {
		t.Fatalf("expected 12 cells for a 60-minute window, got %d", len(cells))
	}

	first := reservationDay(9, 0).Unix()
	if cells[0] != first {
		t.Fatalf("expected first cell at %d, got %d", first, cells[0])
	}
	last := reservationDay(9, 55).Unix()
	if cells[len(cells)-1] != last {
		t.Fatalf("expected last cell at %d, got %d", last, cells[len(cells)-1])
	}
}

func sharesCell(a, b []int64) bool {
	seen := make(map[int64]bool, len(a))
	for _, cell := range a {
		seen[cell] = true
	}
	for _, cell := range b {
		if seen[cell] {
			return true
		}
	}
	return false
}

func TestReservationCellsOverlappingWindowsCollide(t *testing.T) {
	tests := []struct {
		name                 string
		aStart, bStart       time.Time
		aDuration, bDuration int
		wantCollision        bool
	}{
		{name: "same window", aStart: reservationDay(9, 0), aDuration: 30, bStart: reservationDay(9, 0), bDuration: 30, wantCollision: true},
		{name: "second starts inside first", aStart: reservationDay(9, 0), aDuration: 30, bStart: reservationDay(9, 15), bDuration: 30, wantCollision: true},
		{name: "long visit swallows short one", aStart: reservationDay(9, 0), aDuration: 60, bStart: reservationDay(9, 30), bDuration: 15, wantCollision: true},
		{name: "single shared minute", aStart: reservationDay(9, 0), aDuration: 16, bStart: reservationDay(9, 15), bDuration: 15, wantCollision: true},
		{name: "back to back", aStart: reservationDay(9, 0), aDuration: 30, bStart: reservationDay(9, 30), bDuration: 30, wantCollision: false},
		{name: "different hours", aStart: reservationDay(9, 0), aDuration: 30, bStart: reservationDay(11, 0), bDuration: 30, wantCollision: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := reservationCells(tt.aStart, tt.aDuration)
			b := reservationCells(tt.bStart, tt.bDuration)
			if got := sharesCell(a, b); got != tt.wantCollision {
				t.Fatalf("collision = %v, expected %v", got, tt.wantCollision)
			}
		})
	}
}

func TestReservationKeysScopedToVet(t *testing.T) {
	vetA := uuid.New()
	vetB := uuid.New()

	keysA := reservationKeys(vetA, reservationDay(9, 0), 30)
	keysB := reservationKeys(vetB, reservationDay(9, 0), 30)

	if len(keysA) != 6 {
		t.Fatalf("expected 6 keys for a 30-minute window, got %d", len(keysA))
	}
	for i := range keysA {
		if keysA[i] == keysB[i] {
			t.Fatalf("key %q must differ between vets", keysA[i])
		}
	}
}
