package service

import (
	"context"
	"time"
)

// DispatchEvent announces that the snowfall auto-dispatch threshold has
// been crossed. The notification subsystem consumes it; the engine only
// reports state.
type DispatchEvent struct {
	ThresholdInches float64   `json:"threshold_inches"`
	CurrentInches   float64   `json:"current_inches"`
	TriggeredAt     time.Time `json:"triggered_at"`
	Message         string    `json:"message"`
}

// EventPublisher publishes dispatch trigger events to whatever
// transport is configured (Google Pub/Sub, a local HTTP endpoint, or
// nothing at all in development).
type EventPublisher interface {
	// PublishDispatchEvent publishes a fleet dispatch event.
	PublishDispatchEvent(ctx context.Context, event *DispatchEvent) error

	// Close releases any held resources.
	Close() error
}
