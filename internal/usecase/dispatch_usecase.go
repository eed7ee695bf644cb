package usecase

import (
	"context"

	"plow/internal/domain/entity"
)

// DispatchUsecase evaluates the snowfall auto-dispatch trigger.
type DispatchUsecase interface {
	// Evaluate fetches the current weather sample, evaluates the
	// trigger, and publishes a dispatch event when the threshold is
	// newly crossed.
	Evaluate(ctx context.Context) (*entity.DispatchStatus, error)
}
