package geodesy

import (
	"math"
	"strings"

	iso8601 "github.com/senseyeio/duration"
	"github.com/travigo/stopfinder/pkg/stoperrors"
	"golang.org/x/exp/slices"
)

type TravelMode string

const (
	TravelModeWalking TravelMode = "walking"
	TravelModeCycling TravelMode = "cycling"
	TravelModeBus     TravelMode = "bus"
)

// Average speeds in miles per hour
var travelModeSpeeds = map[TravelMode]float64{
	TravelModeWalking: 3,
	TravelModeCycling: 12,
	TravelModeBus:     15,
}

var travelModeOrder = []TravelMode{TravelModeWalking, TravelModeCycling, TravelModeBus}

type TravelEstimate struct {
	Mode    TravelMode `json:"mode" groups:"basic,detailed"`
	Minutes int        `json:"minutes" groups:"basic,detailed"`
}

func (e TravelEstimate) Duration() iso8601.Duration {
	return iso8601.Duration{TM: e.Minutes}
}

// TravelModes lists the supported modes, slowest first
func TravelModes() []TravelMode {
	return slices.Clone(travelModeOrder)
}

func (m TravelMode) Speed() (float64, bool) {
	speed, exists := travelModeSpeeds[m]
	return speed, exists
}

func ParseTravelMode(value string) (TravelMode, error) {
	mode := TravelMode(strings.ToLower(strings.TrimSpace(value)))

	if _, exists := mode.Speed(); !exists {
		return "", invalidModeError(value)
	}

	return mode, nil
}

func invalidModeError(value any) error {
	names := make([]string, 0, len(travelModeOrder))
	for _, mode := range travelModeOrder {
		names = append(names, string(mode))
	}
	slices.Sort(names)

	return stoperrors.NewValidationError("mode", value, "one of "+strings.Join(names, ", "))
}

// EstimateTravelTime returns whole minutes to cover distanceMiles at the mode's
// average speed. Halves round up, so 22.5 minutes becomes 23.
func EstimateTravelTime(distanceMiles float64, mode TravelMode) (int, error) {
	speed, exists := mode.Speed()
	if !exists {
		return 0, invalidModeError(mode)
	}

	if math.IsNaN(distanceMiles) || math.IsInf(distanceMiles, 0) || distanceMiles < 0 {
		return 0, stoperrors.NewValidationError("distance", distanceMiles, "a finite, non-negative number of miles")
	}

	return int(math.Round((distanceMiles / speed) * 60)), nil
}

// EstimateAll returns an estimate for every mode in TravelModes order
func EstimateAll(distanceMiles float64) ([]TravelEstimate, error) {
	estimates := make([]TravelEstimate, 0, len(travelModeOrder))

	for _, mode := range travelModeOrder {
		minutes, err := EstimateTravelTime(distanceMiles, mode)
		if err != nil {
			return nil, err
		}

		estimates = append(estimates, TravelEstimate{
			Mode:    mode,
			Minutes: minutes,
		})
	}

	return estimates, nil
}
