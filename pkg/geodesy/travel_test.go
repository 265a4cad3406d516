package geodesy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/stopfinder/pkg/stoperrors"
)

func TestEstimateTravelTimeWalkingHour(t *testing.T) {
	minutes, err := EstimateTravelTime(3.0, TravelModeWalking)
	require.NoError(t, err)

	assert.Equal(t, 60, minutes)
}

func TestEstimateTravelTimeSpeeds(t *testing.T) {
	tests := []struct {
		mode     TravelMode
		distance float64
		expected int
	}{
		{TravelModeWalking, 0, 0},
		{TravelModeCycling, 12, 60},
		{TravelModeBus, 15, 60},
		{TravelModeBus, 5, 20},
		{TravelModeCycling, 1, 5},
	}

	for _, tt := range tests {
		minutes, err := EstimateTravelTime(tt.distance, tt.mode)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, minutes, "%s %v", tt.mode, tt.distance)
	}
}

// Each of these lands exactly on a half minute
func TestEstimateTravelTimeRoundsHalfUp(t *testing.T) {
	tests := []struct {
		mode     TravelMode
		distance float64
		expected int
	}{
		{TravelModeWalking, 0.375, 8},  // 7.5
		{TravelModeWalking, 1.125, 23}, // 22.5
		{TravelModeWalking, 1.875, 38}, // 37.5
		{TravelModeCycling, 1.5, 8},    // 7.5
		{TravelModeCycling, 4.5, 23},   // 22.5
		{TravelModeBus, 1.875, 8},      // 7.5
	}

	for _, tt := range tests {
		minutes, err := EstimateTravelTime(tt.distance, tt.mode)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, minutes, "%s %v", tt.mode, tt.distance)
	}
}

func TestEstimateTravelTimeMonotonic(t *testing.T) {
	for _, mode := range TravelModes() {
		previous := 0

		for step := 0; step <= 5000; step++ {
			minutes, err := EstimateTravelTime(float64(step)*0.01, mode)
			require.NoError(t, err)

			assert.GreaterOrEqual(t, minutes, previous)
			previous = minutes
		}
	}
}

func TestEstimateTravelTimeUnknownMode(t *testing.T) {
	_, err := EstimateTravelTime(1, TravelMode("teleport"))

	assert.ErrorIs(t, err, stoperrors.ErrInvalidArgument)
	assert.EqualError(t, err, "invalid mode teleport: expected one of bus, cycling, walking")
}

func TestEstimateTravelTimeInvalidDistance(t *testing.T) {
	for _, distance := range []float64{-0.1, math.NaN(), math.Inf(1)} {
		_, err := EstimateTravelTime(distance, TravelModeBus)
		assert.True(t, stoperrors.IsValidation(err), "%v", distance)
	}
}

func TestParseTravelMode(t *testing.T) {
	mode, err := ParseTravelMode(" Cycling ")
	require.NoError(t, err)
	assert.Equal(t, TravelModeCycling, mode)

	_, err = ParseTravelMode("tram")
	assert.True(t, stoperrors.IsValidation(err))
}

func TestEstimateAll(t *testing.T) {
	estimates, err := EstimateAll(3.0)
	require.NoError(t, err)

	assert.Equal(t, []TravelEstimate{
		{Mode: TravelModeWalking, Minutes: 60},
		{Mode: TravelModeCycling, Minutes: 15},
		{Mode: TravelModeBus, Minutes: 12},
	}, estimates)

	_, err = EstimateAll(-1)
	assert.Error(t, err)
}

func TestTravelEstimateDuration(t *testing.T) {
	estimate := TravelEstimate{Mode: TravelModeWalking, Minutes: 45}

	duration := estimate.Duration()
	assert.Equal(t, 45, duration.TM)
	assert.Equal(t, 0, duration.TH)
	assert.Equal(t, 0, duration.D)
}
