package entity

import "time"

// PricingTier is a paid service class. ETAModifier scales the projected
// wait time (0.3 = much faster, 2.0 = double). The engine treats tiers
// as an external lookup table and never mutates them.
type PricingTier struct {
	ID          TierID
	Name        string
	Description string
	PriceUSD    float64
	ETAModifier float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
