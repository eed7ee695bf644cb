package repository

import (
	"context"

	"github.com/google/uuid"

	"plow/internal/domain/entity"
)

// PropertyProfileRepository provides the per-customer property
// measurements consumed by the service duration resolver. A missing
// profile is not an error; resolution falls through to the job's own
// estimate.
type PropertyProfileRepository interface {
	// FindByCustomerIDs retrieves the profiles for the given
	// customers. Customers without a profile are simply absent from
	// the result.
	FindByCustomerIDs(ctx context.Context, customerIDs []uuid.UUID) ([]entity.PropertyProfile, error)
}
