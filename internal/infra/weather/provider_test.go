package weather

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plow/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStaticProvider_ConfiguredValues(t *testing.T) {
	cfg := &config.WeatherConfig{
		StaticCondition:    "heavy_snow",
		StaticTemperatureF: 25,
		StaticRatePerHour:  0.5,
		StaticTotalInches:  2.5,
	}

	sample, err := newStaticProvider(cfg).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "heavy_snow", sample.Condition)
	assert.Equal(t, 2.5, sample.SnowfallTotalInches)
	assert.Equal(t, 0.5, sample.SnowfallRatePerHour)
	assert.False(t, sample.ObservedAt.IsZero())
}

func TestStaticProvider_Defaults(t *testing.T) {
	sample, err := newStaticProvider(nil).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "clear", sample.Condition)
	assert.Zero(t, sample.SnowfallTotalInches)
}

func TestHTTPProvider_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"condition": "heavy_snow",
			"temperature_f": 22,
			"snowfall_rate_per_hour": 1.2,
			"snowfall_total_inches": 4.8,
			"observed_at": "2026-01-12T06:00:00Z"
		}`))
	}))
	defer server.Close()

	sample, err := newHTTPProvider(server.URL, testLogger()).Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "heavy_snow", sample.Condition)
	assert.Equal(t, 4.8, sample.SnowfallTotalInches)
	assert.Equal(t, 1.2, sample.SnowfallRatePerHour)
	assert.Equal(t, 2026, sample.ObservedAt.Year())
}

func TestHTTPProvider_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newHTTPProvider(server.URL, testLogger()).Current(context.Background())
	assert.Error(t, err)
}

func TestNewWeatherService_UnknownProvider(t *testing.T) {
	cfg := &config.Config{Weather: &config.WeatherConfig{Provider: "carrier_pigeon"}}

	_, err := NewWeatherService(Params{Config: cfg, Logger: testLogger()})
	assert.Error(t, err)
}
