package stops

import (
	"math"
	"strconv"
	"strings"
)

const (
	DefaultAtcoCode = "N/A"
	DefaultStopType = "Bus Stop"
	DefaultStatus   = "Active"
)

// Column names of the delimited NaPTAN export. Matched case-sensitively.
const (
	ColumnAtcoCode     = "ATCOCode"
	ColumnCommonName   = "CommonName"
	ColumnLocalityName = "LocalityName"
	ColumnLatitude     = "Latitude"
	ColumnLongitude    = "Longitude"
	ColumnStatus       = "Status"
	ColumnStopType     = "StopType"
)

// StopRecord is one bus stop from the dataset. Records are passed around by
// value and are never modified once built.
type StopRecord struct {
	AtcoCode     string  `json:"atcoCode" groups:"basic,detailed"`
	CommonName   string  `json:"commonName" groups:"basic,detailed"`
	LocalityName string  `json:"localityName" groups:"basic,detailed"`
	StopType     string  `json:"stopType" groups:"detailed"`
	Status       string  `json:"status" groups:"detailed"`
	Latitude     float64 `json:"latitude" groups:"basic,detailed"`
	Longitude    float64 `json:"longitude" groups:"basic,detailed"`
}

func (s StopRecord) IsActive() bool {
	return strings.EqualFold(s.Status, DefaultStatus)
}

func (s StopRecord) HasAtcoCode() bool {
	return s.AtcoCode != DefaultAtcoCode && s.AtcoCode != ""
}

// rawStopFields holds the untyped field values of a record before the
// defaulting rules are applied.
type rawStopFields struct {
	AtcoCode     string
	CommonName   string
	LocalityName string
	StopType     string
	Status       string
	Latitude     string
	Longitude    string
}

func (r rawStopFields) toStopRecord() StopRecord {
	return StopRecord{
		AtcoCode:     textOrDefault(r.AtcoCode, DefaultAtcoCode),
		CommonName:   cleanField(r.CommonName),
		LocalityName: cleanField(r.LocalityName),
		StopType:     textOrDefault(r.StopType, DefaultStopType),
		Status:       textOrDefault(r.Status, DefaultStatus),
		Latitude:     parseCoordinate(r.Latitude),
		Longitude:    parseCoordinate(r.Longitude),
	}
}

// cleanField strips whitespace and surrounding double quotes. Apostrophes are
// kept, they are part of names like 'Stones'.
func cleanField(value string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(value), `"`))
}

func textOrDefault(value string, fallback string) string {
	value = cleanField(value)
	if value == "" {
		return fallback
	}

	return value
}

// parseCoordinate falls back to 0.0 on anything unparseable
func parseCoordinate(value string) float64 {
	parsed, err := strconv.ParseFloat(cleanField(value), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0
	}

	return parsed
}
