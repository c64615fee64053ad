package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

// Appointment represents one booked visit for a pet at a clinic location
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code            string            `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	PetID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"pet_id"`
	VetID           uuid.UUID         `gorm:"type:uuid;not null;index" json:"vet_id"`
	LocationID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"location_id"`
	ServiceItemID   *uuid.UUID        `gorm:"type:uuid;index" json:"service_item_id,omitempty"`
	StartsAt        time.Time         `gorm:"type:timestamp;not null;index" json:"starts_at"`
	DurationMinutes int               `gorm:"not null" json:"duration_minutes"`
	Status          AppointmentStatus `gorm:"type:appointment_status;not null;default:'pending';index" json:"status"`
	Reason          string            `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Pet         Pet          `gorm:"foreignKey:PetID" json:"pet,omitempty"`
	Vet         VetProfile   `gorm:"foreignKey:VetID" json:"vet,omitempty"`
	Location    Location     `gorm:"foreignKey:LocationID" json:"location,omitempty"`
	ServiceItem *ServiceItem `gorm:"foreignKey:ServiceItemID" json:"service_item,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// EndsAt returns the exclusive end instant of the appointment
func (a *Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsPending checks if the appointment is awaiting confirmation
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsConfirmed checks if the appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCompleted checks if the appointment has been fulfilled
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// Confirm changes appointment status to confirmed
func (a *Appointment) Confirm() {
	a.Status = AppointmentStatusConfirmed
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}
