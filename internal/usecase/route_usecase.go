// Package usecase defines the application's use case interfaces and
// their input/output types.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"plow/internal/domain/entity"
)

// BuildRouteInput carries the optional knobs for a route construction
// run. Nil fields fall back to the configured defaults.
type BuildRouteInput struct {
	// PriorityWeight blends proximity against paid urgency, 0 to 1.
	PriorityWeight *float64

	// StartTime anchors the timing propagation.
	StartTime *time.Time
}

// RouteUsecase builds and mutates operator routes.
//
// Recomputes for one operator are latest-wins: a request arriving while
// another is in flight supersedes it, and the superseded result is
// discarded rather than adopted out of order. Routes are projections;
// discarding one has no side effects.
type RouteUsecase interface {
	// BuildRoute computes a fresh optimized route for the operator
	// from the current job snapshot.
	BuildRoute(ctx context.Context, operatorID uuid.UUID, input *BuildRouteInput) (*entity.Route, error)

	// ReorderRoute moves a stop within the operator's current route's
	// reorderable subset and recomputes all timing.
	ReorderRoute(ctx context.Context, operatorID uuid.UUID, fromIndex, toIndex int) (*entity.Route, error)
}
