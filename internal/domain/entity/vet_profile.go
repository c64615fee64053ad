package entity

import (
	"time"

	"github.com/google/uuid"
)

// VetProfile holds veterinarian-specific data, 1:1 with User
type VetProfile struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialty     string    `gorm:"type:varchar(100)" json:"specialty,omitempty"`
	Biography     string    `gorm:"type:text" json:"biography,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:VetID" json:"appointments,omitempty"`
}

func (VetProfile) TableName() string {
	return "vet_profiles"
}
