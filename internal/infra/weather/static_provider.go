package weather

import (
	"context"
	"time"

	"plow/config"
	"plow/internal/domain/entity"
	"plow/internal/domain/service"
)

// staticProvider serves fixed configured values. Used in development
// and as the fallback when no weather source is configured.
type staticProvider struct {
	condition    string
	temperatureF float64
	ratePerHour  float64
	totalInches  float64
}

func newStaticProvider(cfg *config.WeatherConfig) service.WeatherService {
	p := &staticProvider{condition: "clear"}
	if cfg != nil {
		p.condition = cfg.StaticCondition
		if p.condition == "" {
			p.condition = "clear"
		}
		p.temperatureF = cfg.StaticTemperatureF
		p.ratePerHour = cfg.StaticRatePerHour
		p.totalInches = cfg.StaticTotalInches
	}

	return p
}

func (p *staticProvider) Current(ctx context.Context) (*entity.WeatherSample, error) {
	return &entity.WeatherSample{
		Condition:           p.condition,
		TemperatureF:        p.temperatureF,
		SnowfallRatePerHour: p.ratePerHour,
		SnowfallTotalInches: p.totalInches,
		ObservedAt:          time.Now(),
	}, nil
}
