package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of a service stop.
// pending -> en_route -> in_progress -> completed, with cancelled as a
// separate terminal state. The planning engine only reads status; it
// never transitions it.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusEnRoute    JobStatus = "en_route"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Priority is the urgency level assigned by dispatch.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// TierID identifies a paid pricing tier.
type TierID string

const (
	TierEconomy  TierID = "economy"
	TierStandard TierID = "standard"
	TierPriority TierID = "priority"
)

// Job is a single snow clearing visit at a customer location.
type Job struct {
	ID                       uuid.UUID  // Unique job identifier.
	CustomerID               uuid.UUID  // Customer whose property is serviced.
	OperatorID               *uuid.UUID // Assigned operator, nil when unassigned.
	Status                   JobStatus
	Coordinate               Coordinate
	ScheduledDate            time.Time
	Priority                 Priority
	Tier                     TierID
	EstimatedDurationMinutes int        // Dispatch estimate; 0 means unknown.
	ActualDurationMinutes    *int       // Measured on completion.
	ActualStartTime          *time.Time // Set when the operator starts.
	Notes                    string
	PriceUSD                 float64
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// IsCandidate reports whether the job is eligible for route ordering
// (not started, not finished, not cancelled).
func (j Job) IsCandidate() bool {
	return j.Status == JobStatusPending || j.Status == JobStatusEnRoute
}
