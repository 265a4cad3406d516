// Package naptan reads NaPTAN 2.x XML into stop records.
//
// Locality names come from Place>Town or Place>Suburb only. Most StopPoints in
// the national export carry just an NptgLocalityRef code, and resolving that
// needs the separate NPTG dataset, so those stops have an empty LocalityName
// and are found by CommonName alone.
package naptan

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/travigo/stopfinder/pkg/stops"
)

const DateTimeFormat string = "2006-01-02T15:04:05"

type NaPTAN struct {
	CreationDateTime     string `xml:",attr"`
	ModificationDateTime string `xml:",attr"`

	SchemaVersion string `xml:",attr"`

	StopPoints []*StopPoint
}

func (naptanDoc *NaPTAN) Validate() error {
	if naptanDoc.CreationDateTime == "" {
		return errors.New("CreationDateTime must be set")
	}
	if naptanDoc.ModificationDateTime == "" {
		return errors.New("ModificationDateTime must be set")
	}
	if !strings.HasPrefix(naptanDoc.SchemaVersion, "2.") {
		return fmt.Errorf("SchemaVersion must be 2.x but is %s", naptanDoc.SchemaVersion)
	}

	return nil
}

// ModifiedAt parses the document ModificationDateTime, which NaPTAN writes
// without a zone.
func (naptanDoc *NaPTAN) ModifiedAt() (time.Time, bool) {
	modified, err := time.Parse(DateTimeFormat, naptanDoc.ModificationDateTime)
	if err != nil {
		return time.Time{}, false
	}

	return modified, true
}

// Records converts every parsed StopPoint into the canonical stop record
func (naptanDoc *NaPTAN) Records() stops.Records {
	records := make(stops.Records, 0, len(naptanDoc.StopPoints))

	for _, stopPoint := range naptanDoc.StopPoints {
		records = append(records, stopPoint.ToStopRecord())
	}

	return records
}
