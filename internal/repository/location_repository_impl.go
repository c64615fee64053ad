package repository

import (
	"errors"

	"vetclinic-booking/internal/domain/entity"
	domainRepo "vetclinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type locationRepository struct{}

func NewLocationRepository() domainRepo.LocationRepository {
	return &locationRepository{}
}

func (r *locationRepository) Create(db *gorm.DB, location *entity.Location) error {
	return db.Create(location).Error
}

func (r *locationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Location, error) {
	var location entity.Location
	err := db.Preload("Hours").Where("id = ?", id).First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) FindAllActive(db *gorm.DB) ([]entity.Location, error) {
	var locations []entity.Location
	err := db.Preload("Hours").Where("is_active = ?", true).Order("name ASC").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) Update(db *gorm.DB, location *entity.Location) error {
	return db.Omit("Hours").Save(location).Error
}

type locationHoursRepository struct{}

func NewLocationHoursRepository() domainRepo.LocationHoursRepository {
	return &locationHoursRepository{}
}

// Upsert writes the per-location override, replacing an existing row for the
// same location so each location carries at most one configuration.
func (r *locationHoursRepository) Upsert(db *gorm.DB, hours *entity.LocationHours) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "location_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"open_hour", "open_minute", "close_hour", "close_minute",
			"lunch_start_hour", "lunch_start_minute", "lunch_end_hour", "lunch_end_minute",
			"slot_duration_minutes", "updated_at",
		}),
	}).Create(hours).Error
}

func (r *locationHoursRepository) FindByLocationID(db *gorm.DB, locationID uuid.UUID) (*entity.LocationHours, error) {
	var hours entity.LocationHours
	err := db.Where("location_id = ?", locationID).First(&hours).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hours, nil
}

func (r *locationHoursRepository) Delete(db *gorm.DB, locationID uuid.UUID) (int64, error) {
	affected := db.Where("location_id = ?", locationID).Delete(&entity.LocationHours{})
	return affected.RowsAffected, affected.Error
}
