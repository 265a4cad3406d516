package stops

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/travigo/stopfinder/pkg/stoperrors"
)

// Upstream structured feeds have been seen with two naming schemes. The first
// key present with a non-empty value wins.
var feedFieldKeys = struct {
	AtcoCode     []string
	CommonName   []string
	LocalityName []string
	StopType     []string
	Status       []string
	Latitude     []string
	Longitude    []string
}{
	AtcoCode:     []string{"ATCOCode", "atcoCode"},
	CommonName:   []string{"CommonName", "name"},
	LocalityName: []string{"LocalityName", "locality"},
	StopType:     []string{"StopType", "stopType"},
	Status:       []string{"Status", "status"},
	Latitude:     []string{"Latitude", "latitude"},
	Longitude:    []string{"Longitude", "longitude"},
}

// FeedRecord is a single entry from the structured (JSON) feed, normalised into
// the canonical StopRecord as soon as it is decoded.
type FeedRecord struct {
	Record StopRecord
}

func (f *FeedRecord) UnmarshalJSON(data []byte) error {
	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	f.Record = NormaliseFeedValues(values)

	return nil
}

// NormaliseFeedValues applies the dual schema lookup and the sentinel defaults
// to an already decoded feed entry.
func NormaliseFeedValues(values map[string]any) StopRecord {
	fields := rawStopFields{
		AtcoCode:     firstPresent(values, feedFieldKeys.AtcoCode),
		CommonName:   firstPresent(values, feedFieldKeys.CommonName),
		LocalityName: firstPresent(values, feedFieldKeys.LocalityName),
		StopType:     firstPresent(values, feedFieldKeys.StopType),
		Status:       firstPresent(values, feedFieldKeys.Status),
		Latitude:     firstPresent(values, feedFieldKeys.Latitude),
		Longitude:    firstPresent(values, feedFieldKeys.Longitude),
	}

	return fields.toStopRecord()
}

func firstPresent(values map[string]any, keys []string) string {
	for _, key := range keys {
		value, exists := values[key]
		if !exists || value == nil {
			continue
		}

		var text string
		switch typed := value.(type) {
		case string:
			text = typed
		case float64:
			text = strconv.FormatFloat(typed, 'f', -1, 64)
		case bool:
			text = strconv.FormatBool(typed)
		default:
			text = fmt.Sprint(typed)
		}

		if cleanField(text) != "" {
			return text
		}
	}

	return ""
}

// DecodeFeed reads a JSON array of feed entries
func DecodeFeed(source string, reader io.Reader) (Records, error) {
	var entries []FeedRecord

	if err := json.NewDecoder(reader).Decode(&entries); err != nil {
		if err == io.EOF {
			return nil, stoperrors.NewParseError(source, 0, "feed is empty")
		}
		return nil, stoperrors.NewParseError(source, 0, fmt.Sprintf("invalid json feed: %s", err))
	}

	if len(entries) == 0 {
		return nil, stoperrors.NewParseError(source, 0, "feed contains no stop records")
	}

	records := make(Records, 0, len(entries))
	for _, entry := range entries {
		records = append(records, entry.Record)
	}

	return records, nil
}
