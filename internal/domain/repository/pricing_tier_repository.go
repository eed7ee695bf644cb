package repository

import (
	"context"

	"plow/internal/domain/entity"
)

// PricingTierRepository is the lookup table of paid service classes.
// The engine never mutates tiers; pricing is owned elsewhere.
type PricingTierRepository interface {
	// FindByID retrieves a tier by its identifier.
	FindByID(ctx context.Context, id entity.TierID) (*entity.PricingTier, error)

	// FindAll retrieves all tiers.
	FindAll(ctx context.Context) ([]entity.PricingTier, error)
}
