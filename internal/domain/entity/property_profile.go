package entity

import (
	"time"

	"github.com/google/uuid"
)

// PropertyProfile captures per-customer property measurements gathered
// during onboarding. EstimatedClearMinutes is the pre-measured clearing
// time that lets physically harder properties (long, steep, obstacle
// laden) take longer without changing the routing algorithm.
type PropertyProfile struct {
	CustomerID            uuid.UUID
	DrivewayType          string // paved, gravel, concrete, asphalt
	DrivewaySquareFeet    int
	IsSloped              bool
	DifficultyRating      int // 1 (easy) .. 5 (very difficult)
	EstimatedClearMinutes int // 0 means not yet measured.
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
