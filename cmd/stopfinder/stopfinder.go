package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/stopfinder/pkg/api"
	"github.com/travigo/stopfinder/pkg/finder"
	"github.com/travigo/stopfinder/pkg/util"
	"github.com/urfave/cli/v2"
)

func main() {
	env := util.GetEnvironmentVariables()

	if env["STOPFINDER_LOG_FORMAT"] != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if util.IsEnabled(env, "STOPFINDER_DEBUG") {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "stopfinder",
		Description: "Search UK bus stops by name or locality and estimate journeys between them",

		Commands: []*cli.Command{
			finder.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
