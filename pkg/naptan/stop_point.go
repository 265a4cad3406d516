package naptan

import (
	"strings"

	"github.com/travigo/stopfinder/pkg/stops"
)

type StopPoint struct {
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`
	Status               string `xml:",attr"`

	AtcoCode   string
	CommonName string `xml:"Descriptor>CommonName"`

	Town     string    `xml:"Place>Town"`
	Suburb   string    `xml:"Place>Suburb"`
	Location *Location `xml:"Place>Location"`

	StopClassification StopClassification
}

type StopClassification struct {
	StopType    string
	BusStopType string `xml:"OnStreet>Bus>BusStopType"`
}

// ToStopRecord normalises the StopPoint. LocalityName is Town, then Suburb,
// and empty when the point only references an NPTG locality.
func (orig *StopPoint) ToStopRecord() stops.StopRecord {
	record := stops.StopRecord{
		AtcoCode:     strings.TrimSpace(orig.AtcoCode),
		CommonName:   strings.TrimSpace(orig.CommonName),
		LocalityName: strings.TrimSpace(orig.Town),
		StopType:     strings.TrimSpace(orig.StopClassification.StopType),
		Status:       strings.TrimSpace(orig.Status),
	}

	if record.LocalityName == "" {
		record.LocalityName = strings.TrimSpace(orig.Suburb)
	}

	if orig.Location != nil {
		record.Latitude = orig.Location.Latitude
		record.Longitude = orig.Location.Longitude
	}

	if record.AtcoCode == "" {
		record.AtcoCode = stops.DefaultAtcoCode
	}
	if record.StopType == "" {
		record.StopType = stops.DefaultStopType
	}
	// Status is optional on the element and defaults to active
	if record.Status == "" {
		record.Status = stops.DefaultStatus
	}

	return record
}
