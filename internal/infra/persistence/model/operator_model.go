package model

import (
	"time"

	"github.com/google/uuid"
)

// OperatorModel is the GORM-specific struct for the 'operators' table.
type OperatorModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(30)"`
	VehicleName string    `gorm:"type:varchar(100);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'offline'"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OperatorModel) TableName() string {
	return "operators"
}
