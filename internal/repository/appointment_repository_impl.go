package repository

import (
	"errors"
	"time"

	"vetclinic-booking/internal/domain/entity"
	domainRepo "vetclinic-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Pet.Owner.User").
		Preload("Vet.User").
		Preload("Location").
		Preload("ServiceItem").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Joins("JOIN pets ON pets.id = appointments.pet_id").
		Where("pets.owner_id = ?", ownerID).
		Preload("Pet").
		Preload("Vet.User").
		Preload("Location").
		Order("starts_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByVetAndDay(db *gorm.DB, vetID uuid.UUID, day time.Time) ([]entity.Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []entity.Appointment
	err := db.
		Where("vet_id = ? AND starts_at >= ? AND starts_at < ? AND status != ?",
			vetID, dayStart, dayEnd, entity.AppointmentStatusCancelled).
		Order("starts_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByLocationAndDay(db *gorm.DB, locationID uuid.UUID, day time.Time) ([]entity.Appointment, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var appointments []entity.Appointment
	err := db.
		Where("location_id = ? AND starts_at >= ? AND starts_at < ? AND status != ?",
			locationID, dayStart, dayEnd, entity.AppointmentStatusCancelled).
		Order("starts_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Model(&entity.Appointment{})

	if filter != nil {
		if filter.LocationID != uuid.Nil {
			query = query.Where("location_id = ?", filter.LocationID)
		}
		if filter.VetID != uuid.Nil {
			query = query.Where("vet_id = ?", filter.VetID)
		}
		if filter.StartAt != "" {
			query = query.Where("starts_at >= ?", filter.StartAt)
		}
		if filter.EndAt != "" {
			query = query.Where("starts_at < ?", filter.EndAt)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var appointments []entity.Appointment
	err := query.
		Preload("Pet").
		Preload("Vet.User").
		Preload("Location").
		Order("starts_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// CountOverlapping counts non-cancelled appointments for a vet intersecting
// the half-open interval [from, to).
func (r *appointmentRepository) CountOverlapping(db *gorm.DB, vetID uuid.UUID, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("vet_id = ? AND status != ?", vetID, entity.AppointmentStatusCancelled).
		Where("starts_at < ? AND starts_at + (duration_minutes * interval '1 minute') > ?", to, from).
		Count(&count).Error
	return count, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Pet", "Vet", "Location", "ServiceItem").Save(appointment).Error
}
