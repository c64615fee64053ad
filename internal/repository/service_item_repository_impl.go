package repository

import (
	"errors"

	"vetclinic-booking/internal/domain/entity"
	domainRepo "vetclinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type serviceItemRepository struct{}

func NewServiceItemRepository() domainRepo.ServiceItemRepository {
	return &serviceItemRepository{}
}

func (r *serviceItemRepository) Create(db *gorm.DB, item *entity.ServiceItem) error {
	return db.Create(item).Error
}

func (r *serviceItemRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.ServiceItem, error) {
	var item entity.ServiceItem
	err := db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *serviceItemRepository) FindAllActive(db *gorm.DB) ([]entity.ServiceItem, error) {
	var items []entity.ServiceItem
	err := db.Where("is_active = ?", true).Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *serviceItemRepository) Update(db *gorm.DB, item *entity.ServiceItem) error {
	return db.Save(item).Error
}

func (r *serviceItemRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.ServiceItem{})
	return affected.RowsAffected, affected.Error
}
