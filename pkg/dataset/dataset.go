package dataset

import (
	"github.com/travigo/stopfinder/pkg/naptan"
	"github.com/travigo/stopfinder/pkg/stops"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

const (
	ParserNaive  = "naive"
	ParserStrict = "strict"
)

// NaPTANAccessNodesURL is the Department for Transport NaPTAN export of every
// access node in Great Britain.
const NaPTANAccessNodesURL = "https://naptan.api.dft.gov.uk/v1/access-nodes?dataFormat=csv"

type Dataset struct {
	Identifier string `yaml:"identifier" validate:"required"`
	Format     Format `yaml:"format" validate:"required,oneof=csv json xml"`
	Source     string `yaml:"source" validate:"required"`

	// Parser selects the delimited text strategy, csv only
	Parser string `yaml:"parser" validate:"omitempty,oneof=naive strict"`

	// StopPointFilter selects which NaPTAN StopPoints are kept, xml only
	StopPointFilter string `yaml:"stoppointfilter" validate:"omitempty,oneof=all bus basic"`

	// Default datasets are loaded when no dataset is asked for by name
	Default bool `yaml:"default"`
}

func DefaultDataset() Dataset {
	return Dataset{
		Identifier: "gb-naptan",
		Format:     FormatCSV,
		Source:     NaPTANAccessNodesURL,
		Parser:     ParserNaive,
		Default:    true,
	}
}

func (d Dataset) RowParser() stops.RowParser {
	if d.Parser == ParserStrict {
		return stops.StrictParser{}
	}

	return stops.NaiveParser{}
}

func (d Dataset) NaPTANFilter() naptan.Filter {
	switch d.StopPointFilter {
	case "bus":
		return naptan.BusFilter
	case "basic":
		return naptan.BasicFilter
	default:
		return naptan.AllFilter
	}
}
