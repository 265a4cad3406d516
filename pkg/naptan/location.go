package naptan

import (
	"fmt"

	"github.com/paulcager/osgridref"
)

type Location struct {
	GridType string `xml:"Translation>GridType"`
	Easting  string `xml:"Translation>Easting"`
	Northing string `xml:"Translation>Northing"`

	Longitude float64 `xml:"Translation>Longitude"`
	Latitude  float64 `xml:"Translation>Latitude"`
}

// UpdateCoordinates fills in latitude/longitude from the OS grid reference when
// the document only carries easting/northing.
func (l *Location) UpdateCoordinates() error {
	if l == nil {
		return nil
	}

	// Only bother converting the OSGridRef if lat/lon isnt set and easting/northing is set
	if (l.GridType == "UKOS" || l.GridType == "") && l.Easting != "" && l.Northing != "" && (l.Latitude == 0 || l.Longitude == 0) {
		gridRef, err := osgridref.ParseOsGridRef(fmt.Sprintf("%s,%s", l.Easting, l.Northing))
		if err != nil {
			return fmt.Errorf("invalid OS grid reference %s,%s: %w", l.Easting, l.Northing, err)
		}

		l.Latitude, l.Longitude = gridRef.ToLatLon()
	}

	return nil
}
