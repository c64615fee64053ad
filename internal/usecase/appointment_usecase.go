package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"vetclinic-booking/internal/converter"
	"vetclinic-booking/internal/delivery/dto"
	"vetclinic-booking/internal/domain/entity"
	"vetclinic-booking/internal/domain/repository"
	"vetclinic-booking/internal/domain/schedule"
	"vetclinic-booking/internal/service"
	"vetclinic-booking/pkg/timeutil"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPetNotFound          = errors.New("pet not found")
	ErrNotPetOwner          = errors.New("pet does not belong to this owner")
	ErrVetNotFound          = errors.New("vet not found")
	ErrServiceItemNotFound  = errors.New("service item not found")
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrNotAppointmentActor  = errors.New("appointment does not belong to this user")
	ErrInvalidStartTime     = errors.New("invalid start time")
	ErrPastAppointment      = errors.New("appointment time is in the past")
	ErrOutsideBusinessHours = errors.New("appointment falls outside business hours")
	ErrUnalignedStartTime   = errors.New("start time is not aligned to the slot grid")
	ErrSlotTaken            = errors.New("vet already has an appointment in that window")
	ErrInvalidStatusChange  = errors.New("appointment status does not allow this change")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, ownerID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Confirm(ctx context.Context, vetID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	Cancel(ctx context.Context, actorID uuid.UUID, isStaff bool, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, ownerID uuid.UUID, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, ownerID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetVetDaySchedule(ctx context.Context, vetID uuid.UUID, date string) (*dto.AppointmentListResponse, error)
	List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	petRepo         repository.PetRepository
	vetProfileRepo  repository.VetProfileRepository
	locationRepo    repository.LocationRepository
	hoursRepo       repository.LocationHoursRepository
	serviceItemRepo repository.ServiceItemRepository
	auditService    service.AuditService
	slotCache       *service.SlotCacheService
	slotReservation *service.SlotReservationService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	petRepo repository.PetRepository,
	vetProfileRepo repository.VetProfileRepository,
	locationRepo repository.LocationRepository,
	hoursRepo repository.LocationHoursRepository,
	serviceItemRepo repository.ServiceItemRepository,
	auditService service.AuditService,
	slotCache *service.SlotCacheService,
	slotReservation *service.SlotReservationService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		petRepo:         petRepo,
		vetProfileRepo:  vetProfileRepo,
		locationRepo:    locationRepo,
		hoursRepo:       hoursRepo,
		serviceItemRepo: serviceItemRepo,
		auditService:    auditService,
		slotCache:       slotCache,
		slotReservation: slotReservation,
	}
}

func (u *appointmentUsecase) Book(ctx context.Context, ownerID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	pet, err := u.petRepo.FindByID(db, req.PetID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil {
		return nil, ErrPetNotFound
	}
	if pet.OwnerID != ownerID {
		return nil, ErrNotPetOwner
	}

	vet, err := u.vetProfileRepo.FindByUserID(db, req.VetID)
	if err != nil {
		u.log.Warnf("Failed to find vet profile: %+v", err)
		return nil, err
	}
	if vet == nil {
		return nil, ErrVetNotFound
	}

	location, err := u.locationRepo.FindByID(db, req.LocationID)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	hours, err := u.resolveHours(db, req.LocationID)
	if err != nil {
		return nil, err
	}

	duration := hours.SlotDuration
	if req.ServiceItemID != nil {
		item, err := u.serviceItemRepo.FindByID(db, *req.ServiceItemID)
		if err != nil {
			u.log.Warnf("Failed to find service item: %+v", err)
			return nil, err
		}
		if item == nil {
			return nil, ErrServiceItemNotFound
		}
		duration = item.DurationMinutes
	}

	startsAt, err := u.resolveStartTime(req.Date, req.StartTime, hours, duration)
	if err != nil {
		return nil, err
	}

	// Hold the window in Redis before the DB conflict check so two
	// concurrent bookings cannot both see it as free. Released once the
	// transaction has settled either way.
	if err := u.slotReservation.Hold(ctx, req.VetID, startsAt, duration); err != nil {
		if errors.Is(err, service.ErrSlotHeld) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	defer u.slotReservation.Release(ctx, req.VetID, startsAt, duration)

	tx := db.Begin()
	defer tx.Rollback()

	overlapping, err := u.appointmentRepo.CountOverlapping(tx, req.VetID, startsAt, startsAt.Add(time.Duration(duration)*time.Minute))
	if err != nil {
		u.log.Warnf("Failed to count overlapping appointments: %+v", err)
		return nil, err
	}
	if overlapping > 0 {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		Code:            generateAppointmentCode(startsAt),
		PetID:           req.PetID,
		VetID:           req.VetID,
		LocationID:      req.LocationID,
		ServiceItemID:   req.ServiceItemID,
		StartsAt:        startsAt,
		DurationMinutes: duration,
		Status:          entity.AppointmentStatusPending,
		Reason:          req.Reason,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "vet_start") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &ownerID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), appointment); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.InvalidateDay(ctx, req.LocationID, req.Date)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Confirm(ctx context.Context, vetID, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	return u.transition(ctx, appointmentID, entity.AuditActionAppointmentConfirm, func(appointment *entity.Appointment) error {
		if appointment.VetID != vetID {
			return ErrNotAppointmentActor
		}
		if !appointment.IsPending() {
			return ErrInvalidStatusChange
		}
		appointment.Confirm()
		return nil
	}, &vetID)
}

func (u *appointmentUsecase) Cancel(ctx context.Context, actorID uuid.UUID, isStaff bool, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	return u.transition(ctx, appointmentID, entity.AuditActionAppointmentCancel, func(appointment *entity.Appointment) error {
		if !isStaff {
			pet, err := u.petRepo.FindByID(db, appointment.PetID)
			if err != nil {
				return err
			}
			if pet == nil || pet.OwnerID != actorID {
				return ErrNotAppointmentActor
			}
		}
		if appointment.IsCancelled() || appointment.IsCompleted() {
			return ErrInvalidStatusChange
		}
		appointment.Cancel()
		return nil
	}, &actorID)
}

func (u *appointmentUsecase) Reschedule(ctx context.Context, ownerID uuid.UUID, appointmentID uuid.UUID, req *dto.RescheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	pet, err := u.petRepo.FindByID(db, appointment.PetID)
	if err != nil {
		u.log.Warnf("Failed to find pet: %+v", err)
		return nil, err
	}
	if pet == nil || pet.OwnerID != ownerID {
		return nil, ErrNotAppointmentActor
	}

	if appointment.IsCancelled() || appointment.IsCompleted() {
		return nil, ErrInvalidStatusChange
	}

	hours, err := u.resolveHours(db, appointment.LocationID)
	if err != nil {
		return nil, err
	}

	startsAt, err := u.resolveStartTime(req.Date, req.StartTime, hours, appointment.DurationMinutes)
	if err != nil {
		return nil, err
	}

	oldStartsAt := appointment.StartsAt

	if err := u.slotReservation.Hold(ctx, appointment.VetID, startsAt, appointment.DurationMinutes); err != nil {
		if errors.Is(err, service.ErrSlotHeld) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}
	defer u.slotReservation.Release(ctx, appointment.VetID, startsAt, appointment.DurationMinutes)

	tx := db.Begin()
	defer tx.Rollback()

	overlapping, err := u.appointmentRepo.CountOverlapping(tx, appointment.VetID, startsAt, startsAt.Add(time.Duration(appointment.DurationMinutes)*time.Minute))
	if err != nil {
		u.log.Warnf("Failed to count overlapping appointments: %+v", err)
		return nil, err
	}
	if overlapping > 0 {
		return nil, ErrSlotTaken
	}

	appointment.StartsAt = startsAt
	// A moved appointment goes back through vet confirmation
	appointment.Status = entity.AppointmentStatusPending

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		if isDuplicateKeyError(err, "vet_start") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &ownerID, entity.AuditActionAppointmentMove, "appointment", appointment.ID.String(),
		map[string]interface{}{"starts_at": timeutil.FormatLocalDateTime(oldStartsAt)},
		map[string]interface{}{"starts_at": timeutil.FormatLocalDateTime(startsAt)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.InvalidateDay(ctx, appointment.LocationID, oldStartsAt.Format("2006-01-02"))
	u.slotCache.InvalidateDay(ctx, appointment.LocationID, req.Date)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, ownerID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to find owner appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetVetDaySchedule(ctx context.Context, vetID uuid.UUID, date string) (*dto.AppointmentListResponse, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, ErrInvalidDate
	}

	appointments, err := u.appointmentRepo.FindByVetAndDay(u.db.WithContext(ctx), vetID, day)
	if err != nil {
		u.log.Warnf("Failed to find vet appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) List(ctx context.Context, filter *entity.AppointmentFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// transition loads an appointment, applies a status change inside a
// transaction and writes the audit trail.
func (u *appointmentUsecase) transition(ctx context.Context, appointmentID uuid.UUID, action string, apply func(*entity.Appointment) error, actorID *uuid.UUID) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	oldStatus := appointment.Status

	if err := apply(appointment); err != nil {
		return nil, err
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, actorID, action, "appointment", appointment.ID.String(),
		map[string]interface{}{"status": string(oldStatus)},
		map[string]interface{}{"status": string(appointment.Status)},
	); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.slotCache.InvalidateDay(ctx, appointment.LocationID, appointment.StartsAt.Format("2006-01-02"))

	return converter.AppointmentToResponse(appointment), nil
}

// resolveStartTime parses the requested day and clock, then verifies the
// window fits the location's schedule: not in the past, aligned to the slot
// grid and open for every minute of the visit.
func (u *appointmentUsecase) resolveStartTime(date, startTime string, hours schedule.BusinessHours, duration int) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	hour, minute, err := timeutil.ParseClock(startTime)
	if err != nil {
		return time.Time{}, ErrInvalidStartTime
	}

	startsAt := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
	if startsAt.Before(time.Now()) {
		return time.Time{}, ErrPastAppointment
	}

	startMinutes := hour*60 + minute
	openMinutes := hours.StartHour*60 + hours.StartMinute
	if (startMinutes-openMinutes)%hours.SlotDuration != 0 {
		return time.Time{}, ErrUnalignedStartTime
	}

	for offset := 0; offset < duration; offset++ {
		if !hours.IsOpenAt(startsAt.Add(time.Duration(offset) * time.Minute)) {
			return time.Time{}, ErrOutsideBusinessHours
		}
	}

	return startsAt, nil
}

func (u *appointmentUsecase) resolveHours(db *gorm.DB, locationID uuid.UUID) (schedule.BusinessHours, error) {
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

// generateAppointmentCode builds a human-readable code like APT-20260114-A3F2B1
func generateAppointmentCode(startsAt time.Time) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("APT-%s-%06X", startsAt.Format("20060102"), randomBytes)
}
