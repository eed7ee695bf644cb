package planning

import (
	"github.com/google/uuid"

	"plow/internal/domain/entity"
)

// defaultServiceMinutes is the generic clearing estimate used when
// neither the property profile nor the job carries one.
const defaultServiceMinutes = 15

// DurationResolver looks up the expected on-site duration for a stop.
// Resolution order: the customer's pre-measured property clearing time,
// then the job's dispatch estimate, then the generic default.
type DurationResolver struct {
	profiles map[uuid.UUID]entity.PropertyProfile
}

// NewDurationResolver builds a resolver over the given property
// profiles.
func NewDurationResolver(profiles []entity.PropertyProfile) *DurationResolver {
	byCustomer := make(map[uuid.UUID]entity.PropertyProfile, len(profiles))
	for _, p := range profiles {
		byCustomer[p.CustomerID] = p
	}

	return &DurationResolver{profiles: byCustomer}
}

// ServiceMinutes returns the expected on-site duration for a job.
func (r *DurationResolver) ServiceMinutes(job entity.Job) int {
	if r != nil {
		if profile, ok := r.profiles[job.CustomerID]; ok && profile.EstimatedClearMinutes > 0 {
			return profile.EstimatedClearMinutes
		}
	}

	if job.EstimatedDurationMinutes > 0 {
		return job.EstimatedDurationMinutes
	}

	return defaultServiceMinutes
}
