package naptan

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stopfinder/pkg/stoperrors"
	"github.com/travigo/stopfinder/pkg/stops"
	"golang.org/x/net/html/charset"
)

// ParseFile streams a NaPTAN XML document, keeping the StopPoints that pass
// the filter. StopAreas and other elements are skipped.
func (n *NaPTAN) ParseFile(source string, reader io.Reader, matchesFilter Filter) error {
	n.StopPoints = []*StopPoint{}

	if matchesFilter == nil {
		matchesFilter = AllFilter
	}

	rootFound := false

	d := xml.NewDecoder(reader)
	d.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := d.Token()
		if tok == nil || err == io.EOF {
			// EOF means we're done.
			break
		} else if err != nil {
			line, _ := d.InputPos()
			return stoperrors.NewParseError(source, line, fmt.Sprintf("decoding token: %s", err))
		}

		switch ty := tok.(type) {
		case xml.StartElement:
			if ty.Name.Local == "NaPTAN" {
				for _, attr := range ty.Attr {
					switch attr.Name.Local {
					case "CreationDateTime":
						n.CreationDateTime = attr.Value
					case "ModificationDateTime":
						n.ModificationDateTime = attr.Value
					case "SchemaVersion":
						n.SchemaVersion = attr.Value
					}
				}

				if err := n.Validate(); err != nil {
					return stoperrors.NewParseError(source, 0, err.Error())
				}
				rootFound = true
			} else if ty.Name.Local == "StopPoint" {
				if !rootFound {
					return stoperrors.NewParseError(source, 0, "StopPoint found outside of a NaPTAN document")
				}

				var stopPoint StopPoint
				if err = d.DecodeElement(&stopPoint, &ty); err != nil {
					line, _ := d.InputPos()
					return stoperrors.NewParseError(source, line, fmt.Sprintf("decoding StopPoint: %s", err))
				}

				if !matchesFilter(&stopPoint) {
					continue
				}

				if err := stopPoint.Location.UpdateCoordinates(); err != nil {
					log.Warn().Err(err).Str("atco", stopPoint.AtcoCode).Msg("Leaving stop without coordinates")
				}

				n.StopPoints = append(n.StopPoints, &stopPoint)
			}
		default:
		}
	}

	if !rootFound {
		return stoperrors.NewParseError(source, 0, "missing NaPTAN root element")
	}
	if len(n.StopPoints) == 0 {
		return stoperrors.NewParseError(source, 0, "document contains no stop points")
	}

	event := log.Info().Str("source", source).Int("stops", len(n.StopPoints))
	if modified, ok := n.ModifiedAt(); ok {
		event = event.Time("modified", modified)
	}
	event.Msg("Parsed NaPTAN document")

	return nil
}

// ParseRecords parses a NaPTAN XML document straight into stop records
func ParseRecords(source string, reader io.Reader, matchesFilter Filter) (stops.Records, error) {
	var naptanDoc NaPTAN

	if err := naptanDoc.ParseFile(source, reader, matchesFilter); err != nil {
		return nil, err
	}

	return naptanDoc.Records(), nil
}
