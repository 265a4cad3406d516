package finder

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stopfinder/pkg/dataset"
	"github.com/travigo/stopfinder/pkg/geodesy"
	"github.com/travigo/stopfinder/pkg/stops"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "stops",
		Usage: "Search stops and measure journeys between them",
		Subcommands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "find stops whose name or locality contains the query",
				ArgsUsage: "<query>",
				Flags: append(dataset.Flags(),
					&cli.StringFlag{
						Name:  "filter",
						Usage: `expression applied to the results, eg. 'Status == "Active"'`,
					},
				),
				Action: func(c *cli.Context) error {
					var filter *stops.Filter
					if expression := c.String("filter"); expression != "" {
						compiled, err := stops.CompileFilter(expression)
						if err != nil {
							return err
						}
						filter = compiled
					}

					corpus, err := dataset.CorpusFromCLI(c.Context, c)
					if err != nil {
						return err
					}

					results, err := New(corpus).Search(c.Args().First(), filter)
					if err != nil {
						return err
					}

					log.Debug().Int("results", len(results)).Msg("Search complete")

					return writeJSON(c.App.Writer, results)
				},
			},
			{
				Name:  "journey",
				Usage: "distance and travel times between two stops by ATCO code",
				Flags: append(dataset.Flags(),
					&cli.StringFlag{
						Name:     "from",
						Usage:    "ATCO code of the origin stop",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "ATCO code of the destination stop",
						Required: true,
					},
				),
				Action: func(c *cli.Context) error {
					corpus, err := dataset.CorpusFromCLI(c.Context, c)
					if err != nil {
						return err
					}

					stopFinder := New(corpus)

					from, err := stopFinder.mustLookup(c.String("from"))
					if err != nil {
						return err
					}
					to, err := stopFinder.mustLookup(c.String("to"))
					if err != nil {
						return err
					}

					journey, err := stopFinder.Journey(from, to)
					if err != nil {
						return err
					}

					return writeJSON(c.App.Writer, journey)
				},
			},
			{
				Name:  "distance",
				Usage: "distance and travel time between two raw coordinates",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "origin as lat,lon",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "to",
						Usage:    "destination as lat,lon",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "mode",
						Value: string(geodesy.TravelModeWalking),
						Usage: "travel mode (walking, cycling or bus)",
					},
				},
				Action: func(c *cli.Context) error {
					measurement, err := Measure(c.String("from"), c.String("to"), c.String("mode"))
					if err != nil {
						return err
					}

					return writeJSON(c.App.Writer, measurement)
				},
			},
		},
	}
}

type Measurement struct {
	From     geodesy.Coordinate     `json:"from" groups:"basic,detailed"`
	To       geodesy.Coordinate     `json:"to" groups:"basic,detailed"`
	Distance geodesy.DistanceResult `json:"distance" groups:"basic,detailed"`
	Estimate geodesy.TravelEstimate `json:"estimate" groups:"basic,detailed"`
}

// Measure parses two "lat,lon" strings and a travel mode name into a single
// distance and time estimate.
func Measure(from string, to string, mode string) (Measurement, error) {
	fromCoordinate, err := geodesy.ParseCoordinate(from)
	if err != nil {
		return Measurement{}, err
	}
	toCoordinate, err := geodesy.ParseCoordinate(to)
	if err != nil {
		return Measurement{}, err
	}
	travelMode, err := geodesy.ParseTravelMode(mode)
	if err != nil {
		return Measurement{}, err
	}

	distance, err := geodesy.Distance(fromCoordinate, toCoordinate)
	if err != nil {
		return Measurement{}, err
	}

	minutes, err := geodesy.EstimateTravelTime(distance.Miles, travelMode)
	if err != nil {
		return Measurement{}, err
	}

	return Measurement{
		From:     fromCoordinate,
		To:       toCoordinate,
		Distance: distance,
		Estimate: geodesy.TravelEstimate{Mode: travelMode, Minutes: minutes},
	}, nil
}

func (f *Finder) mustLookup(atcoCode string) (stops.StopRecord, error) {
	record, exists, err := f.Lookup(atcoCode)
	if err != nil {
		return stops.StopRecord{}, err
	}
	if !exists {
		return stops.StopRecord{}, fmt.Errorf("%w: %s", ErrStopNotFound, atcoCode)
	}

	return record, nil
}

func writeJSON(writer io.Writer, value any) error {
	if writer == nil {
		writer = os.Stdout
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")

	return encoder.Encode(value)
}
