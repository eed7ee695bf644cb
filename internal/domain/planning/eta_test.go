package planning

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
)

func TestProjectETA_OneMileStandardTier(t *testing.T) {
	customer := milesNorth(truckee, 1)

	eta, err := ProjectETA(truckee, customer, 0, 1.0, testStart)
	require.NoError(t, err)

	assert.Equal(t, 3, eta.Minutes)
	assert.Equal(t, testStart.Add(3*time.Minute), eta.ArrivalAt)
	assert.InDelta(t, 1.0, eta.DistanceMiles, 0.06)
	assert.Zero(t, eta.JobsAhead)
}

func TestProjectETA_PriorityTierShortensWait(t *testing.T) {
	customer := milesNorth(truckee, 1)

	standard, err := ProjectETA(truckee, customer, 0, 1.0, testStart)
	require.NoError(t, err)
	priority, err := ProjectETA(truckee, customer, 0, 0.3, testStart)
	require.NoError(t, err)

	assert.Equal(t, 3, standard.Minutes)
	assert.Equal(t, 1, priority.Minutes) // round(3 * 0.3)
	assert.Less(t, priority.Minutes, standard.Minutes)
}

func TestProjectETA_MonotoneInQueueDepth(t *testing.T) {
	customer := milesNorth(truckee, 2)

	previous := -1
	for jobsAhead := 0; jobsAhead <= 5; jobsAhead++ {
		eta, err := ProjectETA(truckee, customer, jobsAhead, 1.0, testStart)
		require.NoError(t, err)
		assert.Greater(t, eta.Minutes, previous)
		assert.Equal(t, jobsAhead, eta.JobsAhead)
		previous = eta.Minutes
	}
}

func TestProjectETA_MonotoneInDistance(t *testing.T) {
	previous := -1
	for _, miles := range []float64{0.5, 1, 2, 4, 8} {
		eta, err := ProjectETA(truckee, milesNorth(truckee, miles), 1, 1.0, testStart)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, eta.Minutes, previous)
		previous = eta.Minutes
	}
}

func TestProjectETA_TierModifierOrdering(t *testing.T) {
	customer := milesNorth(truckee, 3)
	jobsAhead := 2

	economy, err := ProjectETA(truckee, customer, jobsAhead, 2.0, testStart)
	require.NoError(t, err)
	standard, err := ProjectETA(truckee, customer, jobsAhead, 1.0, testStart)
	require.NoError(t, err)
	priority, err := ProjectETA(truckee, customer, jobsAhead, 0.3, testStart)
	require.NoError(t, err)

	assert.Less(t, priority.Minutes, standard.Minutes)
	assert.Less(t, standard.Minutes, economy.Minutes)
}

func TestProjectETA_RejectsBadInput(t *testing.T) {
	customer := milesNorth(truckee, 1)

	_, err := ProjectETA(truckee, customer, -1, 1.0, testStart)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidETAInput)

	_, err = ProjectETA(truckee, customer, 0, -0.5, testStart)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidETAInput)

	_, err = ProjectETA(truckee, customer, 0, math.NaN(), testStart)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidETAInput)

	_, err = ProjectETA(truckee, entity.Coordinate{Lat: 91, Lng: 0}, 0, 1.0, testStart)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}
