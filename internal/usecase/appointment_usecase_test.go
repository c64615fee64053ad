package usecase

import (
	"errors"
	"testing"
	"time"

	"vetclinic-booking/internal/domain/schedule"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestResolveStartTime(t *testing.T) {
	hours := schedule.DefaultBusinessHours()

	// A fixed day far enough ahead that the past check never trips
	const futureDay = "2030-06-12"

	tests := []struct {
		name      string
		date      string
		startTime string
		duration  int
		wantErr   error
	}{
		{name: "aligned morning start", date: futureDay, startTime: "09:00", duration: 30},
		{name: "ends exactly at closing", date: futureDay, startTime: "17:30", duration: 30},
		{name: "last slot before lunch", date: futureDay, startTime: "12:30", duration: 30},
		{name: "unaligned start", date: futureDay, startTime: "09:05", duration: 15, wantErr: ErrUnalignedStartTime},
		{name: "before opening", date: futureDay, startTime: "07:00", duration: 15, wantErr: ErrOutsideBusinessHours},
		{name: "start during lunch", date: futureDay, startTime: "13:15", duration: 15, wantErr: ErrOutsideBusinessHours},
		{name: "visit runs into lunch", date: futureDay, startTime: "12:30", duration: 60, wantErr: ErrOutsideBusinessHours},
		{name: "visit runs past closing", date: futureDay, startTime: "17:45", duration: 30, wantErr: ErrOutsideBusinessHours},
		{name: "in the past", date: "2020-01-01", startTime: "09:00", duration: 15, wantErr: ErrPastAppointment},
		{name: "bad clock", date: futureDay, startTime: "9am", duration: 15, wantErr: ErrInvalidStartTime},
		{name: "bad date", date: "12-06-2030", startTime: "09:00", duration: 15, wantErr: ErrInvalidDate},
	}

	u := &appointmentUsecase{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startsAt, err := u.resolveStartTime(tt.date, tt.startTime, hours, tt.duration)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			day, _ := time.ParseInLocation("2006-01-02", tt.date, time.Local)
			hour, minute, _ := timeOfDay(tt.startTime)
			want := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.Local)
			if !startsAt.Equal(want) {
				t.Fatalf("expected %s, got %s", want, startsAt)
			}
		})
	}
}

func timeOfDay(clock string) (int, int, error) {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, 0, err
	}
	return parsed.Hour(), parsed.Minute(), nil
}

func TestDuplicateVetStartMapsToSlotTaken(t *testing.T) {
	dup := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "uq_appointments_vet_start_active",
	}

	if !isDuplicateKeyError(dup, "vet_start") {
		t.Fatal("unique violation on the vet/start index should classify as a duplicate")
	}
	if isDuplicateKeyError(dup, "email") {
		t.Fatal("vet/start violation must not match an unrelated constraint")
	}
	if isDuplicateKeyError(errors.New("connection reset"), "vet_start") {
		t.Fatal("non-postgres errors must not classify as duplicates")
	}
}
