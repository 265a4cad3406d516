package geodesy

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/travigo/stopfinder/pkg/stoperrors"
)

type Coordinate struct {
	Latitude  float64 `json:"latitude" groups:"basic,detailed"`
	Longitude float64 `json:"longitude" groups:"basic,detailed"`
}

func NewCoordinate(latitude float64, longitude float64) (Coordinate, error) {
	coordinate := Coordinate{Latitude: latitude, Longitude: longitude}

	return coordinate, coordinate.Validate()
}

// ParseCoordinate reads a "lat,lon" pair
func ParseCoordinate(value string) (Coordinate, error) {
	latitudeText, longitudeText, found := strings.Cut(value, ",")
	if !found {
		return Coordinate{}, stoperrors.NewValidationError("coordinate", value, "a latitude,longitude pair")
	}

	latitude, err := strconv.ParseFloat(strings.TrimSpace(latitudeText), 64)
	if err != nil {
		return Coordinate{}, stoperrors.NewValidationError("latitude", latitudeText, "a decimal number of degrees")
	}

	longitude, err := strconv.ParseFloat(strings.TrimSpace(longitudeText), 64)
	if err != nil {
		return Coordinate{}, stoperrors.NewValidationError("longitude", longitudeText, "a decimal number of degrees")
	}

	return NewCoordinate(latitude, longitude)
}

func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return stoperrors.NewValidationError("latitude", c.Latitude, "degrees in [-90, 90]")
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return stoperrors.NewValidationError("longitude", c.Longitude, "degrees in [-180, 180]")
	}

	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%g,%g", c.Latitude, c.Longitude)
}
