package model

import "time"

// PricingTierModel is the GORM-specific struct for the 'pricing_tiers' table.
type PricingTierModel struct {
	ID          string  `gorm:"type:varchar(20);primary_key"`
	Name        string  `gorm:"type:varchar(50);not null"`
	Description string  `gorm:"type:text"`
	PriceUSD    float64 `gorm:"type:decimal(10,2);not null"`
	ETAModifier float64 `gorm:"type:decimal(4,2);not null;default:1.0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PricingTierModel) TableName() string {
	return "pricing_tiers"
}
