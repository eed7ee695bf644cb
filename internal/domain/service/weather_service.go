// Package service declares the interfaces for external collaborators
// the usecases depend on.
package service

import (
	"context"

	"plow/internal/domain/entity"
)

// WeatherService supplies the current snowfall observation. The actual
// source (a forecast API, a gauge feed, fixed development values) is an
// infrastructure concern.
type WeatherService interface {
	// Current returns the latest weather sample.
	Current(ctx context.Context) (*entity.WeatherSample, error)
}
