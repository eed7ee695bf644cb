package usecase

import (
	"context"

	"github.com/google/uuid"

	"plow/internal/domain/entity"
)

// ETAUsecase projects customer-facing arrival estimates.
type ETAUsecase interface {
	// ProjectETA computes the arrival estimate for the given job:
	// travel time from its operator's current position, queue depth
	// ahead of it, and its pricing tier's modifier.
	ProjectETA(ctx context.Context, jobID uuid.UUID) (*entity.ETAEstimate, error)
}
