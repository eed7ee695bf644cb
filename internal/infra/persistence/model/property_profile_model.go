package model

import (
	"time"

	"github.com/google/uuid"
)

// PropertyProfileModel is the GORM-specific struct for the 'property_profiles' table.
type PropertyProfileModel struct {
	CustomerID            uuid.UUID `gorm:"type:uuid;primary_key"`
	DrivewayType          string    `gorm:"type:varchar(20);not null;default:'paved'"`
	DrivewaySquareFeet    int       `gorm:"not null;default:0"`
	IsSloped              bool      `gorm:"not null;default:false"`
	DifficultyRating      int       `gorm:"not null;default:1"`
	EstimatedClearMinutes int       `gorm:"not null;default:0"`
	Notes                 string    `gorm:"type:text"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (PropertyProfileModel) TableName() string {
	return "property_profiles"
}
