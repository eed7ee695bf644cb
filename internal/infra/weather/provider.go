// Package weather provides the snowfall observation sources.
package weather

import (
	"log/slog"

	"plow/config"
	"plow/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	providerStatic = "static"
	providerHTTP   = "http"
)

// Params holds dependencies for WeatherService, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewWeatherService creates a WeatherService based on configuration.
// With no weather section configured the service falls back to calm
// static conditions, which keeps the trigger off.
func NewWeatherService(params Params) (service.WeatherService, error) {
	cfg := params.Config.Weather
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" || cfg.Provider == providerStatic {
		logger.Info("Using static weather provider")

		return newStaticProvider(cfg), nil
	}

	if cfg.Provider == providerHTTP {
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for http weather provider")
		}
		logger.Info("Using HTTP weather provider",
			slog.String("endpoint", cfg.Endpoint),
		)

		return newHTTPProvider(cfg.Endpoint, logger), nil
	}

	return nil, errors.Errorf("unknown weather provider: %s", cfg.Provider)
}
