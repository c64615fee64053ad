package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location represents one clinic site
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	Phone     string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IsActive  bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Hours        *LocationHours `gorm:"foreignKey:LocationID" json:"hours,omitempty"`
	Appointments []Appointment  `gorm:"foreignKey:LocationID" json:"appointments,omitempty"`
}

func (Location) TableName() string {
	return "locations"
}
