package usecase

import (
	"context"
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
	ErrInvalidClockInput = errors.New("invalid HH:MM time value")
	ErrPartialLunch      = errors.New("lunch start and end must both be set or both be empty")
	ErrInvalidHours      = errors.New("invalid business hours configuration")
)

type LocationUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateLocationRequest) (*dto.LocationResponse, error)
	Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.LocationResponse, error)
	GetAll(ctx context.Context) (*dto.LocationListResponse, error)
	GetHours(ctx context.Context, locationID uuid.UUID) (*dto.LocationHoursResponse, error)
	UpdateHours(ctx context.Context, actorID uuid.UUID, locationID uuid.UUID, req *dto.UpdateLocationHoursRequest) (*dto.LocationHoursResponse, error)
	ResetHours(ctx context.Context, actorID uuid.UUID, locationID uuid.UUID) (*dto.LocationHoursResponse, error)
}

type locationUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	locationRepo repository.LocationRepository
	hoursRepo    repository.LocationHoursRepository
	auditService service.AuditService
	slotCache    *service.SlotCacheService
}

func NewLocationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	locationRepo repository.LocationRepository,
	hoursRepo repository.LocationHoursRepository,
	auditService service.AuditService,
	slotCache *service.SlotCacheService,
) LocationUsecase {
	return &locationUsecase{
		db:           db,
		log:          log,
		locationRepo: locationRepo,
		hoursRepo:    hoursRepo,
		auditService: auditService,
		slotCache:    slotCache,
	}
}

func (u *locationUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	location := &entity.Location{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		IsActive: true,
	}

	if err := u.locationRepo.Create(tx, location); err != nil {
		u.log.Warnf("Failed to create location: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionLocationCreate, "location", location.ID.String(), location); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LocationToResponse(location), nil
}

func (u *locationUsecase) Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, req *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	db := u.db.WithContext(ctx)

	location, err := u.locationRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	if req.Name != "" {
		location.Name = req.Name
	}
	if req.Address != "" {
		location.Address = req.Address
	}
	if req.Phone != "" {
		location.Phone = req.Phone
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.locationRepo.Update(tx, location); err != nil {
		u.log.Warnf("Failed to update location: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionLocationUpdate, "location", location.ID.String(), nil, location); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LocationToResponse(location), nil
}

func (u *locationUsecase) GetByID(ctx context.Context, id uuid.UUID) (*dto.LocationResponse, error) {
	location, err := u.locationRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}
	return converter.LocationToResponse(location), nil
}

func (u *locationUsecase) GetAll(ctx context.Context) (*dto.LocationListResponse, error) {
	locations, err := u.locationRepo.FindAllActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list locations: %+v", err)
		return nil, err
	}
	return &dto.LocationListResponse{
		Locations: converter.LocationsToResponses(locations),
		Total:     len(locations),
	}, nil
}

func (u *locationUsecase) GetHours(ctx context.Context, locationID uuid.UUID) (*dto.LocationHoursResponse, error) {
	db := u.db.WithContext(ctx)

	location, err := u.locationRepo.FindByID(db, locationID)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	stored, err := u.hoursRepo.FindByLocationID(db, locationID)
	if err != nil {
		u.log.Warnf("Failed to find location hours: %+v", err)
		return nil, err
	}
	if stored == nil {
		return converter.BusinessHoursToResponse(schedule.DefaultBusinessHours(), true), nil
	}
	return converter.BusinessHoursToResponse(stored.BusinessHours(), false), nil
}

func (u *locationUsecase) UpdateHours(ctx context.Context, actorID uuid.UUID, locationID uuid.UUID, req *dto.UpdateLocationHoursRequest) (*dto.LocationHoursResponse, error) {
	db := u.db.WithContext(ctx)

	location, err := u.locationRepo.FindByID(db, locationID)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	hours, row, err := buildHoursOverride(locationID, req)
	if err != nil {
		return nil, err
	}

	tx := db.Begin()
	defer tx.Rollback()

	if err := u.hoursRepo.Upsert(tx, row); err != nil {
		u.log.Warnf("Failed to upsert location hours: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionHoursUpdate, "location_hours", locationID.String(), nil, row); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateLocationCache(ctx, locationID)

	return converter.BusinessHoursToResponse(hours, false), nil
}

func (u *locationUsecase) ResetHours(ctx context.Context, actorID uuid.UUID, locationID uuid.UUID) (*dto.LocationHoursResponse, error) {
	db := u.db.WithContext(ctx)

	location, err := u.locationRepo.FindByID(db, locationID)
	if err != nil {
		u.log.Warnf("Failed to find location: %+v", err)
		return nil, err
	}
	if location == nil {
		return nil, ErrLocationNotFound
	}

	tx := db.Begin()
	defer tx.Rollback()

	deleted, err := u.hoursRepo.Delete(tx, locationID)
	if err != nil {
		u.log.Warnf("Failed to delete location hours: %+v", err)
		return nil, err
	}

	if deleted > 0 {
		if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionHoursUpdate, "location_hours", locationID.String(), nil); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.invalidateLocationCache(ctx, locationID)

	return converter.BusinessHoursToResponse(schedule.DefaultBusinessHours(), true), nil
}

// invalidateLocationCache drops cached availability for the next two weeks,
// the window clients are allowed to book within.
func (u *locationUsecase) invalidateLocationCache(ctx context.Context, locationID uuid.UUID) {
	now := time.Now()
	for i := 0; i < 14; i++ {
		u.slotCache.InvalidateDay(ctx, locationID, now.AddDate(0, 0, i).Format("2006-01-02"))
	}
}

// buildHoursOverride parses and validates the request into both the
// scheduling value and its persisted row form.
func buildHoursOverride(locationID uuid.UUID, req *dto.UpdateLocationHoursRequest) (schedule.BusinessHours, *entity.LocationHours, error) {
	openHour, openMinute, err := timeutil.ParseClock(req.OpenTime)
	if err != nil {
		return schedule.BusinessHours{}, nil, ErrInvalidClockInput
	}
	closeHour, closeMinute, err := timeutil.ParseClock(req.CloseTime)
	if err != nil {
		return schedule.BusinessHours{}, nil, ErrInvalidClockInput
	}

	hours := schedule.BusinessHours{
		StartHour:    openHour,
		StartMinute:  openMinute,
		EndHour:      closeHour,
		EndMinute:    closeMinute,
		SlotDuration: req.SlotDuration,
	}

	row := &entity.LocationHours{
		LocationID:          locationID,
		OpenHour:            openHour,
		OpenMinute:          openMinute,
		CloseHour:           closeHour,
		CloseMinute:         closeMinute,
		SlotDurationMinutes: req.SlotDuration,
	}

	hasLunchStart := req.LunchStart != ""
	hasLunchEnd := req.LunchEnd != ""
	if hasLunchStart != hasLunchEnd {
		return schedule.BusinessHours{}, nil, ErrPartialLunch
	}

	if hasLunchStart {
		lunchStartHour, lunchStartMinute, err := timeutil.ParseClock(req.LunchStart)
		if err != nil {
			return schedule.BusinessHours{}, nil, ErrInvalidClockInput
		}
		lunchEndHour, lunchEndMinute, err := timeutil.ParseClock(req.LunchEnd)
		if err != nil {
			return schedule.BusinessHours{}, nil, ErrInvalidClockInput
		}

		hours.Lunch = &schedule.LunchBreak{
			StartHour:   lunchStartHour,
			StartMinute: lunchStartMinute,
			EndHour:     lunchEndHour,
			EndMinute:   lunchEndMinute,
		}
		row.LunchStartHour = &lunchStartHour
		row.LunchStartMinute = &lunchStartMinute
		row.LunchEndHour = &lunchEndHour
		row.LunchEndMinute = &lunchEndMinute
	}

	if err := hours.Validate(); err != nil {
		// Keep the validation detail so the response can say which field is off
		return schedule.BusinessHours{}, nil, fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	return hours, row, nil
}
