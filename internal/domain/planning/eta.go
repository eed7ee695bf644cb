package planning

import (
	"math"
	"time"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
)

// minutesPerJobAhead is the flat queue-depth penalty. It stands in for
// not knowing the other jobs' real service durations from the
// customer's vantage point, trading precision for a cheap,
// always-available number.
const minutesPerJobAhead = 15

// ProjectETA computes the customer-facing arrival estimate for a single
// stop: travel time from the operator's position plus a flat penalty
// per job ahead in the queue, scaled by the pricing tier's modifier.
// It uses the same Distance and TravelMinutes primitives as Build so
// the operator and customer views never diverge.
func ProjectETA(operatorLoc, customerLoc entity.Coordinate, jobsAhead int, etaModifier float64, now time.Time) (*entity.ETAEstimate, error) {
	if jobsAhead < 0 {
		return nil, domainerrors.ErrInvalidETAInput
	}
	if math.IsNaN(etaModifier) || math.IsInf(etaModifier, 0) || etaModifier < 0 {
		return nil, domainerrors.ErrInvalidETAInput
	}

	distance, err := Distance(operatorLoc, customerLoc)
	if err != nil {
		return nil, err
	}

	baseMinutes := math.Round(TravelMinutes(distance) + float64(jobsAhead)*minutesPerJobAhead)
	minutes := int(math.Round(baseMinutes * etaModifier))

	return &entity.ETAEstimate{
		Minutes:       minutes,
		ArrivalAt:     now.Add(time.Duration(minutes) * time.Minute),
		DistanceMiles: roundTenth(distance),
		JobsAhead:     jobsAhead,
	}, nil
}
