package dataset

import (
	"context"
	"errors"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/travigo/stopfinder/pkg/stops"
	"github.com/travigo/stopfinder/pkg/util"
	"github.com/urfave/cli/v2"
)

const DefaultRegistryPath = "data/datasets.yaml"

// Flags are shared by every command that needs a loaded corpus
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "registry",
			Value: DefaultRegistryPath,
			Usage: "YAML file listing the available datasets",
		},
		&cli.StringSliceFlag{
			Name:  "dataset",
			Usage: "identifier of a dataset from the registry, repeatable (default the registry defaults)",
		},
		&cli.StringFlag{
			Name:  "source",
			Usage: "load a single file or URL instead of the registry",
		},
		&cli.StringFlag{
			Name:  "format",
			Value: string(FormatCSV),
			Usage: "format of --source (csv, json or xml)",
		},
		&cli.StringFlag{
			Name:  "parser",
			Value: ParserNaive,
			Usage: "delimited text parser for csv sources (naive or strict)",
		},
	}
}

// DatasetsFromCLI resolves the datasets selected by Flags
func DatasetsFromCLI(c *cli.Context) ([]Dataset, error) {
	if source := c.String("source"); source != "" {
		registry, err := NewRegistry(Dataset{
			Identifier: source,
			Format:     Format(c.String("format")),
			Source:     source,
			Parser:     c.String("parser"),
		})
		if err != nil {
			return nil, err
		}
		return registry.Datasets(), nil
	}

	registry, err := LoadRegistry(c.String("registry"))
	if errors.Is(err, fs.ErrNotExist) && !c.IsSet("registry") {
		log.Info().Str("source", NaPTANAccessNodesURL).Msg("No dataset registry found, using the NaPTAN default")
		registry, err = NewRegistry(DefaultDataset())
	}
	if err != nil {
		return nil, err
	}

	return registry.Select(c.StringSlice("dataset"))
}

// CorpusFromCLI loads the selected datasets. A single dataset is kept in its
// raw form so matching can stop early.
func CorpusFromCLI(ctx context.Context, c *cli.Context) (stops.Corpus, error) {
	datasets, err := DatasetsFromCLI(c)
	if err != nil {
		return nil, err
	}

	fetcher := NewFetcher()
	env := util.GetEnvironmentVariables()
	if env["STOPFINDER_USER_AGENT"] != "" {
		fetcher.UserAgent = env["STOPFINDER_USER_AGENT"]
	}

	if len(datasets) == 1 {
		return fetcher.Load(ctx, datasets[0])
	}

	records, err := fetcher.LoadAll(ctx, datasets)
	if err != nil {
		return nil, err
	}

	return records, nil
}
