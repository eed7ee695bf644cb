package model

import (
	"time"

	"github.com/google/uuid"
)

// JobModel is the GORM-specific struct for the 'jobs' table.
type JobModel struct {
	ID                       uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CustomerID               uuid.UUID  `gorm:"type:uuid;not null;index:idx_jobs_on_customer"`
	OperatorID               *uuid.UUID `gorm:"type:uuid;index:idx_jobs_on_operator"`
	Status                   string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_jobs_on_status"`
	Latitude                 float64    `gorm:"type:decimal(10,8);not null"`
	Longitude                float64    `gorm:"type:decimal(11,8);not null"`
	ScheduledDate            time.Time  `gorm:"type:date;not null;index:idx_jobs_on_scheduled_date"`
	Priority                 string     `gorm:"type:varchar(10);not null;default:'normal'"`
	Tier                     string     `gorm:"type:varchar(20);not null;default:'standard'"`
	EstimatedDurationMinutes int        `gorm:"not null;default:0"`
	ActualDurationMinutes    *int
	ActualStartTime          *time.Time
	Notes                    string  `gorm:"type:text"`
	PriceUSD                 float64 `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobModel) TableName() string {
	return "jobs"
}
