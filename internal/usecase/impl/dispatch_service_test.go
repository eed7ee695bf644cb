package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plow/config"
	"plow/internal/domain/entity"
	"plow/internal/usecase"
)

func newTestDispatchService(threshold float64, sample *entity.WeatherSample) (usecase.DispatchUsecase, *fakePublisher) {
	weather := &fakeWeatherService{
		current: func(ctx context.Context) (*entity.WeatherSample, error) {
			s := *sample

			return &s, nil
		},
	}
	publisher := &fakePublisher{}
	cfg := &config.Config{Dispatch: &config.DispatchConfig{ThresholdInches: threshold}}

	return NewDispatchService(newDiscardLogger(), cfg, weather, publisher), publisher
}

func TestDispatchService_Evaluate_BelowThreshold(t *testing.T) {
	sample := &entity.WeatherSample{
		Condition:           "heavy_snow",
		SnowfallTotalInches: 2.5,
		SnowfallRatePerHour: 0.5,
		ObservedAt:          time.Now(),
	}
	svc, publisher := newTestDispatchService(3.0, sample)

	status, err := svc.Evaluate(context.Background())
	require.NoError(t, err)
	assert.False(t, status.IsTriggered)
	assert.Empty(t, publisher.published)
	require.NotNil(t, status.NextDispatchAt)
}

func TestDispatchService_Evaluate_PublishesOnCrossing(t *testing.T) {
	sample := &entity.WeatherSample{
		Condition:           "heavy_snow",
		SnowfallTotalInches: 4.2,
		SnowfallRatePerHour: 1.0,
		ObservedAt:          time.Now(),
	}
	svc, publisher := newTestDispatchService(3.0, sample)

	status, err := svc.Evaluate(context.Background())
	require.NoError(t, err)
	assert.True(t, status.IsTriggered)
	require.Len(t, publisher.published, 1)
	assert.Equal(t, 3.0, publisher.published[0].ThresholdInches)
	assert.Equal(t, 4.2, publisher.published[0].CurrentInches)

	// A second evaluation above the threshold is not a new crossing.
	status, err = svc.Evaluate(context.Background())
	require.NoError(t, err)
	assert.True(t, status.IsTriggered)
	assert.Len(t, publisher.published, 1)
}

func TestDispatchService_Evaluate_RearmsAfterDroppingBelow(t *testing.T) {
	sample := &entity.WeatherSample{SnowfallTotalInches: 4.0, SnowfallRatePerHour: 1.0}
	svc, publisher := newTestDispatchService(3.0, sample)

	_, err := svc.Evaluate(context.Background())
	require.NoError(t, err)
	require.Len(t, publisher.published, 1)

	// Overnight reset: accumulation drops, then builds back up.
	sample.SnowfallTotalInches = 0.5
	_, err = svc.Evaluate(context.Background())
	require.NoError(t, err)

	sample.SnowfallTotalInches = 3.5
	_, err = svc.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Len(t, publisher.published, 2)
}

func TestDispatchService_DefaultThreshold(t *testing.T) {
	sample := &entity.WeatherSample{SnowfallTotalInches: 2.0, SnowfallRatePerHour: 0.0}
	weather := &fakeWeatherService{
		current: func(ctx context.Context) (*entity.WeatherSample, error) {
			return sample, nil
		},
	}
	svc := NewDispatchService(newDiscardLogger(), &config.Config{}, weather, &fakePublisher{})

	status, err := svc.Evaluate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3.0, status.ThresholdInches)
	assert.False(t, status.IsTriggered)
	// No rate means no projected trigger time.
	assert.Nil(t, status.NextDispatchAt)
}
