// Package repository defines the persistence interfaces the engine's
// callers depend on. The planning engine itself never touches these;
// it takes all data as explicit arguments.
package repository

import (
	"context"

	"github.com/google/uuid"

	"plow/internal/domain/entity"
	"plow/internal/errors"
)

// Sentinel errors shared by repository implementations.
var (
	ErrJobNotFound         = errors.New("job not found")
	ErrOperatorNotFound    = errors.New("operator not found")
	ErrPricingTierNotFound = errors.New("pricing tier not found")
)

// JobRepository provides read access to service stop records. Jobs are
// created and transitioned by the dispatch subsystem; the engine only
// reads them.
type JobRepository interface {
	// FindByID retrieves a single job.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// FindByOperator retrieves all jobs assigned to an operator, in
	// creation order.
	FindByOperator(ctx context.Context, operatorID uuid.UUID) ([]entity.Job, error)
}
