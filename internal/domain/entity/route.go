package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RouteStop is a job placed at a specific position in an operator's
// route, with propagated timing and leg metrics.
type RouteStop struct {
	Job                       Job
	Order                     int // 1-based position in the route.
	EstimatedArrival          time.Time
	EstimatedDeparture        time.Time
	DistanceFromPreviousMiles float64 // Rounded to 0.1 mi.
	TravelMinutesFromPrevious int
}

// RouteStats aggregates the metrics of a full route.
type RouteStats struct {
	TotalStops          int
	TotalDistanceMiles  float64
	TotalTravelMinutes  int
	TotalServiceMinutes int
	TotalMinutes        int
	EstimatedEnd        time.Time
}

// Route is an ordered, timed sequence of stops for one operator. It is
// a pure computed projection, fully reproducible from its inputs, and
// is never persisted as authoritative state.
type Route struct {
	OperatorID uuid.UUID
	Stops      []RouteStop
	Completed  []Job // Completed jobs excluded from ordering, kept for summary counts.
	Stats      RouteStats
	Path       orb.LineString // Operator position followed by each stop, in order.
}

// JobIDs returns the IDs of the routed stops in order.
func (r *Route) JobIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Stops))
	for _, stop := range r.Stops {
		ids = append(ids, stop.Job.ID)
	}

	return ids
}
