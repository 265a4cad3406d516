package finder

import (
	"errors"
	"strings"

	"github.com/travigo/stopfinder/pkg/geodesy"
	"github.com/travigo/stopfinder/pkg/stoperrors"
	"github.com/travigo/stopfinder/pkg/stops"
)

var ErrStopNotFound = errors.New("stop not found")

// Finder joins the stop matcher and the geodesy calculator over one loaded
// corpus. It holds no selection state, callers pass the chosen stops in.
type Finder struct {
	corpus  stops.Corpus
	matcher *stops.Matcher
}

func New(corpus stops.Corpus) *Finder {
	return &Finder{
		corpus:  corpus,
		matcher: stops.NewMatcher(),
	}
}

type Journey struct {
	From      stops.StopRecord         `json:"from" groups:"basic,detailed"`
	To        stops.StopRecord         `json:"to" groups:"basic,detailed"`
	Distance  geodesy.DistanceResult   `json:"distance" groups:"basic,detailed"`
	Estimates []geodesy.TravelEstimate `json:"estimates" groups:"basic,detailed"`
}

// Search runs the matcher and optionally narrows the results with a filter
func (f *Finder) Search(query string, filter *stops.Filter) ([]stops.StopRecord, error) {
	results, err := f.matcher.Match(f.corpus, query)
	if err != nil {
		return nil, err
	}

	if filter != nil {
		return filter.Apply(results)
	}

	return results, nil
}

// Lookup finds a stop by ATCO code. The boolean is false when no stop has it.
func (f *Finder) Lookup(atcoCode string) (stops.StopRecord, bool, error) {
	atcoCode = strings.TrimSpace(atcoCode)
	if atcoCode == "" || atcoCode == stops.DefaultAtcoCode {
		return stops.StopRecord{}, false, stoperrors.NewValidationError("atcoCode", atcoCode, "an ATCO code")
	}
	if f.corpus == nil {
		return stops.StopRecord{}, false, stoperrors.NewParseError("corpus", 0, "no corpus loaded")
	}

	var found stops.StopRecord
	exists := false

	err := f.corpus.Scan(func(record stops.StopRecord) bool {
		if strings.EqualFold(record.AtcoCode, atcoCode) {
			found = record
			exists = true
			return false
		}

		return true
	})
	if err != nil {
		return stops.StopRecord{}, false, err
	}

	return found, exists, nil
}

// Journey measures the distance between two selected stops and estimates the
// time for every travel mode.
func (f *Finder) Journey(from stops.StopRecord, to stops.StopRecord) (Journey, error) {
	return PlanJourney(from, to)
}

func PlanJourney(from stops.StopRecord, to stops.StopRecord) (Journey, error) {
	distance, err := geodesy.Distance(StopCoordinate(from), StopCoordinate(to))
	if err != nil {
		return Journey{}, err
	}

	estimates, err := geodesy.EstimateAll(distance.Miles)
	if err != nil {
		return Journey{}, err
	}

	return Journey{
		From:      from,
		To:        to,
		Distance:  distance,
		Estimates: estimates,
	}, nil
}

func StopCoordinate(record stops.StopRecord) geodesy.Coordinate {
	return geodesy.Coordinate{
		Latitude:  record.Latitude,
		Longitude: record.Longitude,
	}
}
