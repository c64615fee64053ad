package repository

import (
	"errors"

	"vetclinic-booking/internal/domain/entity"
	domainRepo "vetclinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vetProfileRepository struct{}

func NewVetProfileRepository() domainRepo.VetProfileRepository {
	return &vetProfileRepository{}
}

func (r *vetProfileRepository) Create(db *gorm.DB, profile *entity.VetProfile) error {
	return db.Create(profile).Error
}

func (r *vetProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.VetProfile, error) {
	var profile entity.VetProfile
	err := db.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *vetProfileRepository) FindAllActive(db *gorm.DB) ([]entity.VetProfile, error) {
	var profiles []entity.VetProfile
	err := db.
		Joins("JOIN users ON users.id = vet_profiles.user_id").
		Where("users.is_active = ?", true).
		Preload("User").
		Order("users.full_name ASC").
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *vetProfileRepository) Update(db *gorm.DB, profile *entity.VetProfile) error {
	return db.Omit("User").Save(profile).Error
}

func (r *vetProfileRepository) Delete(db *gorm.DB, userID uuid.UUID) (int64, error) {
	affected := db.Where("user_id = ?", userID).Delete(&entity.VetProfile{})
	return affected.RowsAffected, affected.Error
}

type ownerProfileRepository struct{}

func NewOwnerProfileRepository() domainRepo.OwnerProfileRepository {
	return &ownerProfileRepository{}
}

func (r *ownerProfileRepository) Create(db *gorm.DB, profile *entity.OwnerProfile) error {
	return db.Create(profile).Error
}

func (r *ownerProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.OwnerProfile, error) {
	var profile entity.OwnerProfile
	err := db.Preload("User").Preload("Pets").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ownerProfileRepository) Update(db *gorm.DB, profile *entity.OwnerProfile) error {
	return db.Omit("User", "Pets").Save(profile).Error
}
