package repository

import (
	"vetclinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LocationRepository interface {
	Create(db *gorm.DB, location *entity.Location) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Location, error)
	FindAllActive(db *gorm.DB) ([]entity.Location, error)
	Update(db *gorm.DB, location *entity.Location) error
}

type LocationHoursRepository interface {
	Upsert(db *gorm.DB, hours *entity.LocationHours) error
	FindByLocationID(db *gorm.DB, locationID uuid.UUID) (*entity.LocationHours, error)
	Delete(db *gorm.DB, locationID uuid.UUID) (int64, error)
}
