package planning

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
)

var testStart = time.Date(2026, time.January, 12, 6, 0, 0, 0, time.UTC)

func testOperator() entity.Operator {
	return entity.Operator{
		ID:              uuid.New(),
		Name:            "Mike Thompson",
		Status:          entity.OperatorAvailable,
		CurrentLocation: truckee,
	}
}

func jobAt(loc entity.Coordinate, status entity.JobStatus, priority entity.Priority, tier entity.TierID) entity.Job {
	return entity.Job{
		ID:                       uuid.New(),
		CustomerID:               uuid.New(),
		Status:                   status,
		Coordinate:               loc,
		Priority:                 priority,
		Tier:                     tier,
		EstimatedDurationMinutes: 20,
	}
}

func stopIDs(route *entity.Route) map[uuid.UUID]int {
	ids := make(map[uuid.UUID]int, len(route.Stops))
	for _, stop := range route.Stops {
		ids[stop.Job.ID]++
	}

	return ids
}

func TestBuild_ContainsEveryCandidateExactlyOnce(t *testing.T) {
	op := testOperator()
	jobs := []entity.Job{
		jobAt(milesNorth(truckee, 1), entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard),
		jobAt(milesNorth(truckee, 2), entity.JobStatusEnRoute, entity.PriorityHigh, entity.TierEconomy),
		jobAt(milesNorth(truckee, 3), entity.JobStatusPending, entity.PriorityUrgent, entity.TierPriority),
	}

	route, err := Build(op, jobs, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: DefaultPriorityWeight,
		StartTime:      testStart,
	})
	require.NoError(t, err)

	counts := stopIDs(route)
	require.Len(t, counts, 3)
	for _, job := range jobs {
		assert.Equal(t, 1, counts[job.ID], "job %s must appear exactly once", job.ID)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	op := testOperator()
	jobs := []entity.Job{
		jobAt(milesNorth(truckee, 1.3), entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard),
		jobAt(milesNorth(truckee, 0.4), entity.JobStatusPending, entity.PriorityUrgent, entity.TierEconomy),
		jobAt(milesNorth(truckee, 2.7), entity.JobStatusPending, entity.PriorityHigh, entity.TierPriority),
	}
	opts := BuildOptions{PriorityWeight: 0.4, StartTime: testStart}

	first, err := Build(op, jobs, NewDurationResolver(nil), opts)
	require.NoError(t, err)
	second, err := Build(op, jobs, NewDurationResolver(nil), opts)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBuild_DistanceAdditivity(t *testing.T) {
	op := testOperator()
	jobs := []entity.Job{
		jobAt(milesNorth(truckee, 0.8), entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard),
		jobAt(entity.Coordinate{Lat: truckee.Lat + 0.02, Lng: truckee.Lng + 0.03}, entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard),
		jobAt(entity.Coordinate{Lat: truckee.Lat - 0.01, Lng: truckee.Lng + 0.015}, entity.JobStatusPending, entity.PriorityHigh, entity.TierEconomy),
	}

	route, err := Build(op, jobs, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: DefaultPriorityWeight,
		StartTime:      testStart,
	})
	require.NoError(t, err)

	var legSum float64
	for _, stop := range route.Stops {
		legSum += stop.DistanceFromPreviousMiles
	}

	// Each leg is rounded to 0.1 mi, so the sum may drift by half that
	// per stop against the total.
	assert.InDelta(t, route.Stats.TotalDistanceMiles, legSum, 0.05*float64(len(route.Stops))+1e-9)
}

func TestBuild_TimingMonotonic(t *testing.T) {
	op := testOperator()
	jobs := []entity.Job{
		jobAt(milesNorth(truckee, 1), entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard),
		jobAt(milesNorth(truckee, 2.5), entity.JobStatusPending, entity.PriorityHigh, entity.TierPriority),
		jobAt(milesNorth(truckee, 4), entity.JobStatusPending, entity.PriorityUrgent, entity.TierEconomy),
	}

	route, err := Build(op, jobs, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: DefaultPriorityWeight,
		StartTime:      testStart,
	})
	require.NoError(t, err)
	require.Len(t, route.Stops, 3)

	for i, stop := range route.Stops {
		assert.False(t, stop.EstimatedDeparture.Before(stop.EstimatedArrival))
		if i > 0 {
			assert.False(t, stop.EstimatedArrival.Before(route.Stops[i-1].EstimatedDeparture))
		}
	}
	assert.Equal(t, route.Stops[2].EstimatedDeparture, route.Stats.EstimatedEnd)
}

func TestBuild_ZeroWeightIsNearestNeighbor(t *testing.T) {
	op := testOperator()
	near := jobAt(milesNorth(truckee, 0.5), entity.JobStatusPending, entity.PriorityNormal, entity.TierEconomy)
	mid := jobAt(milesNorth(truckee, 1.5), entity.JobStatusPending, entity.PriorityUrgent, entity.TierPriority)
	far := jobAt(milesNorth(truckee, 3), entity.JobStatusPending, entity.PriorityHigh, entity.TierStandard)

	route, err := Build(op, []entity.Job{far, mid, near}, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: 0,
		StartTime:      testStart,
	})
	require.NoError(t, err)
	require.Len(t, route.Stops, 3)

	assert.Equal(t, near.ID, route.Stops[0].Job.ID)
	assert.Equal(t, mid.ID, route.Stops[1].Job.ID)
	assert.Equal(t, far.ID, route.Stops[2].Job.ID)
}

func TestBuild_FullWeightIsPriorityOrder(t *testing.T) {
	op := testOperator()
	// The highest weight job is placed farthest away.
	low := jobAt(milesNorth(truckee, 0.2), entity.JobStatusPending, entity.PriorityNormal, entity.TierEconomy)
	mid := jobAt(milesNorth(truckee, 1), entity.JobStatusPending, entity.PriorityHigh, entity.TierStandard)
	high := jobAt(milesNorth(truckee, 4), entity.JobStatusPending, entity.PriorityUrgent, entity.TierPriority)

	route, err := Build(op, []entity.Job{low, mid, high}, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: 1,
		StartTime:      testStart,
	})
	require.NoError(t, err)
	require.Len(t, route.Stops, 3)

	assert.Equal(t, high.ID, route.Stops[0].Job.ID)
	assert.Equal(t, mid.ID, route.Stops[1].Job.ID)
	assert.Equal(t, low.ID, route.Stops[2].Job.ID)
}

func TestBuild_RaisingWeightNeverDemotesHeaviestStop(t *testing.T) {
	op := testOperator()
	heavy := jobAt(milesNorth(truckee, 3), entity.JobStatusPending, entity.PriorityUrgent, entity.TierPriority)
	light := jobAt(milesNorth(truckee, 0.5), entity.JobStatusPending, entity.PriorityNormal, entity.TierEconomy)
	jobs := []entity.Job{light, heavy}

	positionOf := func(weight float64) int {
		route, err := Build(op, jobs, NewDurationResolver(nil), BuildOptions{
			PriorityWeight: weight,
			StartTime:      testStart,
		})
		require.NoError(t, err)
		for _, stop := range route.Stops {
			if stop.Job.ID == heavy.ID {
				return stop.Order
			}
		}
		t.Fatalf("heavy job missing from route")

		return 0
	}

	previous := positionOf(0)
	for _, weight := range []float64{0.2, 0.4, 0.6, 0.8, 1} {
		current := positionOf(weight)
		assert.LessOrEqual(t, current, previous, "weight %v", weight)
		previous = current
	}
}

func TestBuild_InProgressLockedFirst(t *testing.T) {
	op := testOperator()
	started := jobAt(milesNorth(truckee, 2), entity.JobStatusInProgress, entity.PriorityNormal, entity.TierStandard)
	closer := jobAt(milesNorth(truckee, 0.3), entity.JobStatusPending, entity.PriorityUrgent, entity.TierPriority)

	route, err := Build(op, []entity.Job{closer, started}, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: DefaultPriorityWeight,
		StartTime:      testStart,
	})
	require.NoError(t, err)
	require.Len(t, route.Stops, 2)

	assert.Equal(t, started.ID, route.Stops[0].Job.ID)
	assert.Equal(t, 1, route.Stops[0].Order)
	assert.Equal(t, closer.ID, route.Stops[1].Job.ID)
}

func TestBuild_CompletedExcludedButReturned(t *testing.T) {
	op := testOperator()
	done := jobAt(milesNorth(truckee, 1), entity.JobStatusCompleted, entity.PriorityNormal, entity.TierStandard)
	pending := jobAt(milesNorth(truckee, 2), entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard)

	route, err := Build(op, []entity.Job{done, pending}, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: DefaultPriorityWeight,
		StartTime:      testStart,
	})
	require.NoError(t, err)

	require.Len(t, route.Stops, 1)
	assert.Equal(t, pending.ID, route.Stops[0].Job.ID)
	require.Len(t, route.Completed, 1)
	assert.Equal(t, done.ID, route.Completed[0].ID)
}

func TestBuild_NoCandidatesYieldsZeroStatRoute(t *testing.T) {
	op := testOperator()
	done := jobAt(milesNorth(truckee, 1), entity.JobStatusCompleted, entity.PriorityNormal, entity.TierStandard)

	route, err := Build(op, []entity.Job{done}, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: DefaultPriorityWeight,
		StartTime:      testStart,
	})
	require.NoError(t, err)

	assert.Empty(t, route.Stops)
	assert.Len(t, route.Completed, 1)
	assert.Zero(t, route.Stats.TotalStops)
	assert.Zero(t, route.Stats.TotalDistanceMiles)
	assert.Zero(t, route.Stats.TotalMinutes)
	assert.Equal(t, testStart, route.Stats.EstimatedEnd)
}

func TestBuild_CancelledJobsDropped(t *testing.T) {
	op := testOperator()
	cancelled := jobAt(milesNorth(truckee, 1), entity.JobStatusCancelled, entity.PriorityUrgent, entity.TierPriority)
	pending := jobAt(milesNorth(truckee, 2), entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard)

	route, err := Build(op, []entity.Job{cancelled, pending}, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: DefaultPriorityWeight,
		StartTime:      testStart,
	})
	require.NoError(t, err)

	require.Len(t, route.Stops, 1)
	assert.Equal(t, pending.ID, route.Stops[0].Job.ID)
	assert.Empty(t, route.Completed)
}

func TestBuild_RejectsInvalidPriorityWeight(t *testing.T) {
	op := testOperator()
	jobs := []entity.Job{
		jobAt(milesNorth(truckee, 1), entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard),
	}

	for _, weight := range []float64{-0.1, 1.1} {
		_, err := Build(op, jobs, NewDurationResolver(nil), BuildOptions{
			PriorityWeight: weight,
			StartTime:      testStart,
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPriorityWeight)
	}
}

func TestBuild_RoutePathFollowsStopOrder(t *testing.T) {
	op := testOperator()
	jobs := []entity.Job{
		jobAt(milesNorth(truckee, 1), entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard),
		jobAt(milesNorth(truckee, 2), entity.JobStatusPending, entity.PriorityNormal, entity.TierStandard),
	}

	route, err := Build(op, jobs, NewDurationResolver(nil), BuildOptions{
		PriorityWeight: 0,
		StartTime:      testStart,
	})
	require.NoError(t, err)

	require.Len(t, route.Path, 3)
	assert.Equal(t, op.CurrentLocation.Point(), route.Path[0])
	for i, stop := range route.Stops {
		assert.Equal(t, stop.Job.Coordinate.Point(), route.Path[i+1])
	}
}
