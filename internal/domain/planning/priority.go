package planning

import "plow/internal/domain/entity"

// MaxWeight is the highest combined priority weight (urgent + priority
// tier). It is the normalization constant of the greedy score and must
// stay consistent with the tables below.
const MaxWeight = 180

var priorityWeights = map[entity.Priority]int{
	entity.PriorityUrgent: 100,
	entity.PriorityHigh:   50,
	entity.PriorityNormal: 10,
}

var tierWeights = map[entity.TierID]int{
	entity.TierPriority: 80,
	entity.TierStandard: 20,
	entity.TierEconomy:  5,
}

// Weight converts a job's urgency level and paid tier into a numeric
// weight. Unknown values fall back to the normal/standard weights.
func Weight(job entity.Job) int {
	pw, ok := priorityWeights[job.Priority]
	if !ok {
		pw = priorityWeights[entity.PriorityNormal]
	}

	tw, ok := tierWeights[job.Tier]
	if !ok {
		tw = tierWeights[entity.TierStandard]
	}

	return pw + tw
}
