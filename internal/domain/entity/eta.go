package entity

import "time"

// ETAEstimate is the customer-facing arrival projection for a single
// stop. It is computed from the same distance and travel-time
// primitives as the operator's route so the two views cannot diverge.
type ETAEstimate struct {
	Minutes       int
	ArrivalAt     time.Time
	DistanceMiles float64 // Rounded to 0.1 mi.
	JobsAhead     int
}
