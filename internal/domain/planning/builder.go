package planning

import (
	"math"
	"time"

	"github.com/paulmach/orb"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
)

const (
	// DefaultPriorityWeight is the blend applied when the dispatcher
	// does not override it: 30% paid urgency, 70% proximity.
	DefaultPriorityWeight = 0.3

	// scoreHorizonMiles clamps the distance score to zero beyond this
	// range, so far-away stops compete on priority alone.
	scoreHorizonMiles = 5.0
)

// BuildOptions tunes a single route construction run.
type BuildOptions struct {
	// PriorityWeight blends proximity against paid urgency, 0 (pure
	// nearest-neighbor) to 1 (pure priority order).
	PriorityWeight float64

	// StartTime anchors the timing propagation; zero means now.
	StartTime time.Time
}

// Build constructs an ordered route for one operator using greedy
// priority-weighted nearest-stop selection.
//
// Completed jobs are excluded from ordering and returned separately on
// the route. An in-progress job is locked at position 1; the clock and
// location advance past it before selection begins. Cancelled jobs are
// dropped. The remaining pending and en-route jobs form the candidate
// set.
//
// Selection advances a provisional clock only to bias later choices;
// the returned per-stop times come from a second walk over the final
// order from the original start location and time, shared with Reorder
// so the two paths can never disagree on timing math.
func Build(operator entity.Operator, jobs []entity.Job, resolver *DurationResolver, opts BuildOptions) (*entity.Route, error) {
	if math.IsNaN(opts.PriorityWeight) || opts.PriorityWeight < 0 || opts.PriorityWeight > 1 {
		return nil, domainerrors.ErrInvalidPriorityWeight
	}
	if !operator.CurrentLocation.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	start := opts.StartTime
	if start.IsZero() {
		start = time.Now()
	}

	candidates, inProgress, completed := partition(jobs)

	if len(candidates) == 0 && len(inProgress) == 0 {
		return emptyRoute(operator, nil, completed, start), nil
	}
	if len(candidates) == 0 {
		return emptyRoute(operator, inProgress, completed, start), nil
	}

	ordered := make([]entity.Job, 0, len(candidates)+len(inProgress))
	currentLoc := operator.CurrentLocation
	currentTime := start

	// An already started job is locked in first; the provisional clock
	// advances past its remaining service time.
	if len(inProgress) > 0 {
		locked := inProgress[0]
		ordered = append(ordered, locked)
		currentLoc = locked.Coordinate
		currentTime = currentTime.Add(minutesToDuration(float64(resolver.ServiceMinutes(locked))))
	}

	remaining := make([]entity.Job, len(candidates))
	copy(remaining, candidates)

	for len(remaining) > 0 {
		bestIndex := -1
		bestScore := math.Inf(-1)

		for i, job := range remaining {
			distance, err := Distance(currentLoc, job.Coordinate)
			if err != nil {
				return nil, err
			}

			normalizedDistance := math.Max(0, 1-distance/scoreHorizonMiles)
			normalizedPriority := float64(Weight(job)) / MaxWeight

			score := normalizedDistance*(1-opts.PriorityWeight) +
				normalizedPriority*opts.PriorityWeight

			// Strictly-greater comparison keeps ties first-seen.
			if score > bestScore {
				bestScore = score
				bestIndex = i
			}
		}

		selected := remaining[bestIndex]
		remaining = append(remaining[:bestIndex], remaining[bestIndex+1:]...)
		ordered = append(ordered, selected)

		distance, err := Distance(currentLoc, selected.Coordinate)
		if err != nil {
			return nil, err
		}

		currentLoc = selected.Coordinate
		currentTime = currentTime.Add(minutesToDuration(
			TravelMinutes(distance) + float64(resolver.ServiceMinutes(selected))))
	}

	return walkTimings(operator, ordered, completed, resolver, start)
}

// partition splits jobs by status. Extra in-progress jobs beyond the
// first are treated as en-route candidates so no stop is silently lost.
func partition(jobs []entity.Job) (candidates, inProgress, completed []entity.Job) {
	for _, job := range jobs {
		switch {
		case job.IsCandidate():
			candidates = append(candidates, job)
		case job.Status == entity.JobStatusInProgress:
			if len(inProgress) == 0 {
				inProgress = append(inProgress, job)
			} else {
				candidates = append(candidates, job)
			}
		case job.Status == entity.JobStatusCompleted:
			completed = append(completed, job)
		}
	}

	return candidates, inProgress, completed
}

// walkTimings re-walks an agreed stop order from the operator's start
// position and time, producing the authoritative per-stop arrival,
// departure and leg metrics plus the aggregate stats. Build and Reorder
// both end here.
func walkTimings(operator entity.Operator, ordered, completed []entity.Job, resolver *DurationResolver, start time.Time) (*entity.Route, error) {
	stops := make([]entity.RouteStop, 0, len(ordered))
	path := orb.LineString{operator.CurrentLocation.Point()}

	currentLoc := operator.CurrentLocation
	currentTime := start

	var totalDistance, totalTravel float64
	var totalService int

	for i, job := range ordered {
		distance, err := Distance(currentLoc, job.Coordinate)
		if err != nil {
			return nil, err
		}

		travel := TravelMinutes(distance)
		service := resolver.ServiceMinutes(job)

		arrival := currentTime.Add(minutesToDuration(travel))
		departure := arrival.Add(minutesToDuration(float64(service)))

		stops = append(stops, entity.RouteStop{
			Job:                       job,
			Order:                     i + 1,
			EstimatedArrival:          arrival,
			EstimatedDeparture:        departure,
			DistanceFromPreviousMiles: roundTenth(distance),
			TravelMinutesFromPrevious: int(math.Round(travel)),
		})

		path = append(path, job.Coordinate.Point())
		totalDistance += distance
		totalTravel += travel
		totalService += service
		currentLoc = job.Coordinate
		currentTime = departure
	}

	return &entity.Route{
		OperatorID: operator.ID,
		Stops:      stops,
		Completed:  completed,
		Stats: entity.RouteStats{
			TotalStops:          len(stops),
			TotalDistanceMiles:  roundTenth(totalDistance),
			TotalTravelMinutes:  int(math.Round(totalTravel)),
			TotalServiceMinutes: totalService,
			TotalMinutes:        int(math.Round(totalTravel + float64(totalService))),
			EstimatedEnd:        currentTime,
		},
		Path: path,
	}, nil
}

// emptyRoute is the zero-travel route returned when an operator has no
// pending work: a normal state, not an error. Any in-progress stops are
// listed in place with zero leg metrics.
func emptyRoute(operator entity.Operator, inProgress, completed []entity.Job, start time.Time) *entity.Route {
	stops := make([]entity.RouteStop, 0, len(inProgress))
	path := orb.LineString{operator.CurrentLocation.Point()}

	for i, job := range inProgress {
		stops = append(stops, entity.RouteStop{
			Job:                job,
			Order:              i + 1,
			EstimatedArrival:   start,
			EstimatedDeparture: start,
		})
		path = append(path, job.Coordinate.Point())
	}

	return &entity.Route{
		OperatorID: operator.ID,
		Stops:      stops,
		Completed:  completed,
		Stats: entity.RouteStats{
			EstimatedEnd: start,
		},
		Path: path,
	}
}

func minutesToDuration(minutes float64) time.Duration {
	return time.Duration(minutes * float64(time.Minute))
}
