package entity

import "time"

// WeatherSample is a point-in-time snowfall observation supplied by an
// external weather source. The engine derives trigger state from it and
// owns no persisted weather state.
type WeatherSample struct {
	Condition           string  // e.g. "heavy_snow"
	TemperatureF        float64
	SnowfallRatePerHour float64 // inches per hour
	SnowfallTotalInches float64 // accumulated today
	ObservedAt          time.Time
}

// DispatchStatus is the evaluated auto-dispatch trigger state. It is a
// report for an external dispatcher to act on; evaluating it dispatches
// no one.
type DispatchStatus struct {
	ThresholdInches float64
	CurrentInches   float64
	IsTriggered     bool
	NextDispatchAt  *time.Time // Projected trigger time, nil when none within 24h.
	Message         string
}
