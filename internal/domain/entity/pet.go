package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents an animal registered under an owner profile
type Pet struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Species     string     `gorm:"type:varchar(50);not null" json:"species"`
	Breed       string     `gorm:"type:varchar(100)" json:"breed,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner        OwnerProfile  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PetID" json:"appointments,omitempty"`
}

func (Pet) TableName() string {
	return "pets"
}
