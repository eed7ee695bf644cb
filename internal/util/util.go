// Package util holds small display formatting helpers shared by the
// dispatch messages and HTTP responses.
package util

import (
	"fmt"
	"math"
	"time"
)

// FormatMinutes formats a minute count into a human readable duration
// (e.g. "45 min", "1h 30m", "2h").
func FormatMinutes(minutes float64) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", int(math.Round(minutes)))
	}

	hours := int(minutes) / 60
	mins := int(math.Round(math.Mod(minutes, 60)))
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}

	return fmt.Sprintf("%dh", hours)
}

// FormatMiles formats a mileage figure at display precision.
func FormatMiles(miles float64) string {
	return fmt.Sprintf("%.1f mi", miles)
}

// FormatClock formats a timestamp as a short local clock time
// (e.g. "3:04 PM"), the way arrival times are shown to customers.
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}
