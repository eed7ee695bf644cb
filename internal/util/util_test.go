package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes float64
		want    string
	}{
		{name: "under an hour", minutes: 45, want: "45 min"},
		{name: "rounds up", minutes: 44.6, want: "45 min"},
		{name: "hours and minutes", minutes: 90, want: "1h 30m"},
		{name: "whole hours", minutes: 120, want: "2h"},
		{name: "zero", minutes: 0, want: "0 min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}

func TestFormatMiles(t *testing.T) {
	assert.Equal(t, "3.1 mi", FormatMiles(3.1))
	assert.Equal(t, "0.0 mi", FormatMiles(0))
}

func TestFormatClock(t *testing.T) {
	at := time.Date(2026, 1, 12, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "3:04 PM", FormatClock(at))
}
