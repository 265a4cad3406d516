package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/stopfinder/pkg/dataset"
	"github.com/travigo/stopfinder/pkg/finder"
	"github.com/travigo/stopfinder/pkg/stops"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the stop search web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: append(dataset.Flags(),
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				),
				Action: func(c *cli.Context) error {
					corpus, err := dataset.CorpusFromCLI(c.Context, c)
					if err != nil {
						return err
					}

					// Every request scans the corpus so keep it parsed
					records, err := stops.Collect(corpus)
					if err != nil {
						return err
					}

					log.Info().Int("stops", len(records)).Str("listen", c.String("listen")).Msg("Starting web api")

					return SetupServer(c.String("listen"), finder.New(records))
				},
			},
		},
	}
}
