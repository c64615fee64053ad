package repository

import (
	"time"

	"vetclinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Appointment, error)
	FindByVetAndDay(db *gorm.DB, vetID uuid.UUID, day time.Time) ([]entity.Appointment, error)
	FindByLocationAndDay(db *gorm.DB, locationID uuid.UUID, day time.Time) ([]entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	CountOverlapping(db *gorm.DB, vetID uuid.UUID, from, to time.Time) (int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
