package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		from TripStatus
		to   TripStatus
		want bool
	}{
		{TripStatusPlanned, TripStatusInProgress, true},
		{TripStatusInProgress, TripStatusCompleted, true},
		{TripStatusPlanned, TripStatusCompleted, false},
		{TripStatusInProgress, TripStatusPlanned, false},
		{TripStatusCompleted, TripStatusInProgress, false},
		{TripStatusCompleted, TripStatusPlanned, false},
		{TripStatusPlanned, TripStatusPlanned, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
