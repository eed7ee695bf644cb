package weather

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"plow/internal/domain/entity"
	"plow/internal/domain/service"

	"github.com/pkg/errors"
)

// httpProvider polls a JSON weather feed.
type httpProvider struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// weatherResponse is the expected feed payload.
type weatherResponse struct {
	Condition           string  `json:"condition"`
	TemperatureF        float64 `json:"temperature_f"`
	SnowfallRatePerHour float64 `json:"snowfall_rate_per_hour"`
	SnowfallTotalInches float64 `json:"snowfall_total_inches"`
	ObservedAt          string  `json:"observed_at"`
}

func newHTTPProvider(endpoint string, logger *slog.Logger) service.WeatherService {
	return &httpProvider{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

func (p *httpProvider) Current(ctx context.Context) (*entity.WeatherSample, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch weather feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("weather feed returned status %d", resp.StatusCode)
	}

	var payload weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode weather feed")
	}

	observedAt, err := time.Parse(time.RFC3339, payload.ObservedAt)
	if err != nil {
		// Feeds without timestamps still carry usable readings.
		observedAt = time.Now()
	}

	p.logger.Debug("weather sample fetched",
		slog.String("condition", payload.Condition),
		slog.Float64("total_inches", payload.SnowfallTotalInches),
	)

	return &entity.WeatherSample{
		Condition:           payload.Condition,
		TemperatureF:        payload.TemperatureF,
		SnowfallRatePerHour: payload.SnowfallRatePerHour,
		SnowfallTotalInches: payload.SnowfallTotalInches,
		ObservedAt:          observedAt,
	}, nil
}
