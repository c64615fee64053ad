package repository

import (
	"vetclinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ServiceItemRepository interface {
	Create(db *gorm.DB, item *entity.ServiceItem) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceItem, error)
	FindAllActive(db *gorm.DB) ([]entity.ServiceItem, error)
	Update(db *gorm.DB, item *entity.ServiceItem) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
