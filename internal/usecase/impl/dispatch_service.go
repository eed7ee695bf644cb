package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"plow/config"
	"plow/internal/domain/entity"
	"plow/internal/domain/planning"
	"plow/internal/domain/service"
	"plow/internal/errors"
	"plow/internal/usecase"
)

const defaultThresholdInches = 3.0

// dispatchService evaluates the snowfall auto-dispatch trigger and
// publishes a fleet deployment event on the threshold crossing. The
// event fires once per crossing, not on every evaluation while snow
// stays above the threshold.
type dispatchService struct {
	logger    *slog.Logger
	weather   service.WeatherService
	publisher service.EventPublisher
	threshold float64

	mu            sync.Mutex
	lastTriggered bool
}

// NewDispatchService creates a new dispatch service.
func NewDispatchService(
	logger *slog.Logger,
	cfg *config.Config,
	weather service.WeatherService,
	publisher service.EventPublisher,
) usecase.DispatchUsecase {
	threshold := defaultThresholdInches
	if cfg != nil && cfg.Dispatch != nil && cfg.Dispatch.ThresholdInches > 0 {
		threshold = cfg.Dispatch.ThresholdInches
	}

	return &dispatchService{
		logger:    logger,
		weather:   weather,
		publisher: publisher,
		threshold: threshold,
	}
}

// Evaluate implements usecase.DispatchUsecase.
func (s *dispatchService) Evaluate(ctx context.Context) (*entity.DispatchStatus, error) {
	sample, err := s.weather.Current(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch weather sample")
	}

	now := time.Now()
	status := planning.EvaluateTrigger(*sample, s.threshold, now)

	if s.crossed(status.IsTriggered) {
		event := &service.DispatchEvent{
			ThresholdInches: s.threshold,
			CurrentInches:   sample.SnowfallTotalInches,
			TriggeredAt:     now,
			Message:         status.Message,
		}
		if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
			// The trigger decision stands even when the event cannot
			// be delivered.
			s.logger.Error("publish dispatch event failed", slog.Any("error", err))
		} else {
			s.logger.Info("dispatch event published",
				slog.Float64("threshold_inches", s.threshold),
				slog.Float64("current_inches", sample.SnowfallTotalInches))
		}
	}

	return &status, nil
}

// crossed records the trigger state and reports whether it flipped from
// off to on since the previous evaluation.
func (s *dispatchService) crossed(triggered bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	wasTriggered := s.lastTriggered
	s.lastTriggered = triggered

	return triggered && !wasTriggered
}
