package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnerProfile holds pet-owner-specific data, 1:1 with User
type OwnerProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	PhoneNumber string    `gorm:"type:varchar(20);not null" json:"phone_number"`
	Address     string    `gorm:"type:text" json:"address,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Pets []Pet `gorm:"foreignKey:OwnerID" json:"pets,omitempty"`
}

func (OwnerProfile) TableName() string {
	return "owner_profiles"
}
