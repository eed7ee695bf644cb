// Package planning implements the route optimization and ETA
// projection engine: great-circle distance, travel-time estimation,
// priority-weighted greedy route construction, timing propagation,
// manual reordering, per-customer ETA projection and the snowfall
// dispatch trigger. Every function is a pure, synchronous computation
// of its inputs; the package holds no state between calls.
package planning

import (
	"math"

	"plow/internal/domain/entity"
	domainerrors "plow/internal/domain/errors"
)

const (
	// earthRadiusMiles is the Earth radius used by the haversine formula.
	earthRadiusMiles = 3959.0

	// averageSpeedMph is the assumed travel speed on residential roads.
	averageSpeedMph = 20.0
)

// Distance returns the great-circle distance in miles between two
// coordinates using the haversine formula. It is symmetric and rejects
// coordinates outside valid bounds.
func Distance(from, to entity.Coordinate) (float64, error) {
	if !from.Valid() || !to.Valid() {
		return 0, domainerrors.ErrInvalidCoordinate
	}

	dLat := (to.Lat - from.Lat) * math.Pi / 180
	dLng := (to.Lng - from.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(from.Lat*math.Pi/180)*
			math.Cos(to.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c, nil
}

// TravelMinutes converts a distance in miles to estimated travel time
// in minutes at the residential average speed. Distance is never
// negative when produced by Distance.
func TravelMinutes(miles float64) float64 {
	return (miles / averageSpeedMph) * 60
}

// roundTenth rounds to one decimal place, the display precision used
// for mileage figures throughout the route and ETA views.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
