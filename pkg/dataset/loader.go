package dataset

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"github.com/kr/pretty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/travigo/stopfinder/pkg/naptan"
	"github.com/travigo/stopfinder/pkg/stoperrors"
	"github.com/travigo/stopfinder/pkg/stops"
)

// Load fetches a dataset and wraps it in the corpus matching its format.
// Delimited text is kept raw so matching can stop scanning early.
func (f *Fetcher) Load(ctx context.Context, dataset Dataset) (stops.Corpus, error) {
	log.Info().Str("dataset", dataset.Identifier).Str("source", dataset.Source).Msg("Loading dataset")

	body, err := f.Fetch(ctx, dataset.Source)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset %s: %w", dataset.Identifier, err)
	}

	return Decode(dataset, body)
}

func Decode(dataset Dataset, body []byte) (stops.Corpus, error) {
	switch dataset.Format {
	case FormatCSV:
		return stops.NewDelimitedText(dataset.Identifier, string(body), dataset.RowParser()), nil
	case FormatJSON:
		records, err := stops.DecodeFeed(dataset.Identifier, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		return records, nil
	case FormatXML:
		records, err := naptan.ParseRecords(dataset.Identifier, bytes.NewReader(body), dataset.NaPTANFilter())
		if err != nil {
			return nil, err
		}
		return records, nil
	default:
		return nil, stoperrors.NewValidationError("format", dataset.Format, "one of csv, json, xml")
	}
}

type loadedDataset struct {
	index   int
	records stops.Records
}

// LoadAll loads every dataset concurrently and joins their records, keeping
// the order the datasets were given in.
func (f *Fetcher) LoadAll(ctx context.Context, datasets []Dataset) (stops.Records, error) {
	p := pool.NewWithResults[loadedDataset]().WithContext(ctx).WithCancelOnError()
	p.WithMaxGoroutines(4)

	for i, dataset := range datasets {
		i, dataset := i, dataset
		p.Go(func(ctx context.Context) (loadedDataset, error) {
			corpus, err := f.Load(ctx, dataset)
			if err != nil {
				return loadedDataset{}, err
			}

			records, err := stops.Collect(corpus)
			if err != nil {
				return loadedDataset{}, fmt.Errorf("reading dataset %s: %w", dataset.Identifier, err)
			}

			log.Info().Str("dataset", dataset.Identifier).Int("stops", len(records)).Msg("Loaded dataset")

			return loadedDataset{index: i, records: records}, nil
		})
	}

	loaded, err := p.Wait()
	if err != nil {
		return nil, err
	}

	sort.Slice(loaded, func(i, j int) bool {
		return loaded[i].index < loaded[j].index
	})

	var records stops.Records
	seen := map[string]string{}
	for _, result := range loaded {
		for _, record := range result.records {
			// An ATCO code names one stop, the first dataset to carry it wins
			if record.HasAtcoCode() {
				if firstDataset, exists := seen[record.AtcoCode]; exists {
					log.Debug().Str("atco", record.AtcoCode).Str("dataset", datasets[result.index].Identifier).Str("kept", firstDataset).Msg("Skipping duplicate stop")
					continue
				}
				seen[record.AtcoCode] = datasets[result.index].Identifier
			}

			records = append(records, record)
		}
	}

	if len(records) > 0 && log.Logger.GetLevel() <= zerolog.DebugLevel {
		log.Debug().Msgf("First stop record %s", pretty.Sprint(records[0]))
	}

	return records, nil
}
