package geodesy

import "math"

const (
	EarthRadiusMiles  = 3959.0
	KilometresPerMile = 1.60934
	degreesToRadians  = math.Pi / 180
)

type DistanceResult struct {
	Miles      float64 `json:"miles" groups:"basic,detailed"`
	Kilometres float64 `json:"kilometres" groups:"basic,detailed"`
}

// Distance returns the great-circle distance between a and b using the
// Haversine formula on a sphere of radius EarthRadiusMiles.
func Distance(a Coordinate, b Coordinate) (DistanceResult, error) {
	if err := a.Validate(); err != nil {
		return DistanceResult{}, err
	}
	if err := b.Validate(); err != nil {
		return DistanceResult{}, err
	}

	miles := haversineMiles(a, b)

	return DistanceResult{
		Miles:      miles,
		Kilometres: miles * KilometresPerMile,
	}, nil
}

func haversineMiles(a Coordinate, b Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * degreesToRadians
	dLon := (b.Longitude - a.Longitude) * degreesToRadians

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	h := sinLat*sinLat +
		math.Cos(a.Latitude*degreesToRadians)*math.Cos(b.Latitude*degreesToRadians)*sinLon*sinLon

	// Rounding can push h just outside [0, 1] for near antipodal points
	h = math.Min(1, math.Max(0, h))

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMiles * c
}
