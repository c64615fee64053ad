package usecase

import (
	"context"
	"errors"
	"time"

	"vetclinic-booking/internal/converter"
	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/domain/entity"
	"vetclinic-booking/internal/domain/repository"
	"vetclinic-booking/internal/domain/schedule"
	"vetclinic-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrInvalidDate      = errors.New("invalid date format, expected YYYY-MM-DD")
)

type AvailabilityUsecase interface {
	GetDayAvailability(ctx context.Context, locationID uuid.UUID, vetID *uuid.UUID, date string) (*dto.DayAvailabilityResponse, error)
	GetCapacityReport(ctx context.Context, locationID uuid.UUID, date string) (*dto.CapacityReportResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	locationRepo    repository.LocationRepository
	hoursRepo       repository.LocationHoursRepository
	appointmentRepo repository.AppointmentRepository
	slotCache       *service.SlotCacheService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	locationRepo repository.LocationRepository,
	hoursRepo repository.LocationHoursRepository,
	appointmentRepo repository.AppointmentRepository,
	slotCache *service.SlotCacheService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		locationRepo:    locationRepo,
		hoursRepo:       hoursRepo,
		appointmentRepo: appointmentRepo,
		slotCache:       slotCache,
	}
}

func (u *availabilityUsecase) GetDayAvailability(ctx context.Context, locationID uuid.UUID, vetID *uuid.UUID, date string) (*dto.DayAvailabilityResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	cacheVetID := uuid.Nil
	if vetID != nil {
		cacheVetID = *vetID
	}
	if cached := u.slotCache.Get(ctx, locationID, cacheVetID, date); cached != nil {
		return cached, nil
	}

	db := u.db.WithContext(ctx)

	location, err := u.locationRepo.FindByID(db, locationID)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	hours, err := u.resolveHours(db, locationID)
	if err != nil {
		return nil, err
	}

	slots, err := schedule.GenerateDaySlots(day, hours)
	if err != nil {
		return nil, err
	}

	if vetID != nil {
		appointments, err := u.appointmentRepo.FindByVetAndDay(db, *vetID, day)
		if err != nil {
			u.log.Warnf("Failed to find vet appointments: %+v", err)
			return nil, err
		}
		slots = filterBookedSlots(slots, hours.SlotDuration, appointments)
	}

	result := &dto.DayAvailabilityResponse{
		LocationID:       locationID,
		VetID:            vetID,
		Date:             date,
		SlotDuration:     hours.SlotDuration,
		AvailableMinutes: hours.AvailableMinutes(),
		Slots:            converter.SlotsToResponses(slots),
	}

	u.slotCache.Set(ctx, locationID, cacheVetID, date, result)

	return result, nil
}

func (u *availabilityUsecase) GetCapacityReport(ctx context.Context, locationID uuid.UUID, date string) (*dto.CapacityReportResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	db := u.db.WithContext(ctx)

	location, err := u.locationRepo.FindByID(db, locationID)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	hours, err := u.resolveHours(db, locationID)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByLocationAndDay(db, locationID, day)
	if err != nil {
		u.log.Warnf("Failed to find location appointments: %+v", err)
		return nil, err
	}

	bookedMinutes := 0
	for _, appointment := range appointments {
		bookedMinutes += appointment.DurationMinutes
	}

	return &dto.CapacityReportResponse{
		LocationID:       locationID,
		Date:             date,
		AvailableMinutes: hours.AvailableMinutes(),
		BookedMinutes:    bookedMinutes,
	}, nil
}

func (u *availabilityUsecase) resolveHours(db *gorm.DB, locationID uuid.UUID) (schedule.BusinessHours, error) {
	stored, err := u.hoursRepo.FindByLocationID(db, locationID)
	if err != nil {
		u.log.Warnf("Failed to find location hours: %+v", err)
		return schedule.BusinessHours{}, err
	}
	if stored == nil {
		return schedule.DefaultBusinessHours(), nil
	}
	return stored.BusinessHours(), nil
}

// filterBookedSlots drops every slot whose window [start, start+duration)
// intersects an existing appointment's window.
func filterBookedSlots(slots []schedule.TimeSlot, slotDuration int, appointments []entity.Appointment) []schedule.TimeSlot {
	if len(appointments) == 0 {
		return slots
	}

	free := make([]schedule.TimeSlot, 0, len(slots))
	for _, slot := range slots {
		slotEnd := slot.StartsAt.Add(time.Duration(slotDuration) * time.Minute)
		booked := false
		for _, appointment := range appointments {
			if slot.StartsAt.Before(appointment.EndsAt()) && slotEnd.After(appointment.StartsAt) {
				booked = true
				break
			}
		}
		if !booked {
			free = append(free, slot)
		}
	}
	return free
}
