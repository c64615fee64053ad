package repository

import (
	"vetclinic-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VetProfileRepository interface {
	Create(db *gorm.DB, profile *entity.VetProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VetProfile, error)
	FindAllActive(db *gorm.DB) ([]entity.VetProfile, error)
	Update(db *gorm.DB, profile *entity.VetProfile) error
	Delete(db *gorm.DB, userID uuid.UUID) (int64, error)
}

type OwnerProfileRepository interface {
	Create(db *gorm.DB, profile *entity.OwnerProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.OwnerProfile, error)
	Update(db *gorm.DB, profile *entity.OwnerProfile) error
}
