package repository

import (
	"context"

	"github.com/google/uuid"

	"plow/internal/domain/entity"
)

// OperatorRepository provides read access to fleet operator records.
type OperatorRepository interface {
	// FindByID retrieves a single operator.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Operator, error)

	// FindAll retrieves every operator in the fleet.
	FindAll(ctx context.Context) ([]entity.Operator, error)
}
