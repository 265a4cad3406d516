package stops

import (
	"strings"

	"github.com/travigo/stopfinder/pkg/stoperrors"
)

// RowParser turns delimited text into stop records. Implementations must call
// fn in row order and stop once fn returns false.
type RowParser interface {
	ScanRecords(source string, text string, fn func(StopRecord) bool) error
}

// DelimitedText is a corpus of raw comma separated NaPTAN text with a header row.
// Parser defaults to NaiveParser.
type DelimitedText struct {
	Source string
	Text   string
	Parser RowParser
}

func NewDelimitedText(source string, text string, parser RowParser) *DelimitedText {
	return &DelimitedText{
		Source: source,
		Text:   text,
		Parser: parser,
	}
}

func (d *DelimitedText) Scan(fn func(StopRecord) bool) error {
	parser := d.Parser
	if parser == nil {
		parser = NaiveParser{}
	}

	source := d.Source
	if source == "" {
		source = "delimited text"
	}

	return parser.ScanRecords(source, d.Text, fn)
}

// columnIndex maps each expected column to its position in the header, -1 when
// the column is missing.
type columnIndex struct {
	atcoCode     int
	commonName   int
	localityName int
	latitude     int
	longitude    int
	status       int
	stopType     int
}

func newColumnIndex(header []string) columnIndex {
	index := columnIndex{-1, -1, -1, -1, -1, -1, -1}

	for i, name := range header {
		switch cleanField(name) {
		case ColumnAtcoCode:
			index.atcoCode = i
		case ColumnCommonName:
			index.commonName = i
		case ColumnLocalityName:
			index.localityName = i
		case ColumnLatitude:
			index.latitude = i
		case ColumnLongitude:
			index.longitude = i
		case ColumnStatus:
			index.status = i
		case ColumnStopType:
			index.stopType = i
		}
	}

	return index
}

func (c columnIndex) fields(values []string) rawStopFields {
	get := func(i int) string {
		if i < 0 || i >= len(values) {
			return ""
		}
		return values[i]
	}

	return rawStopFields{
		AtcoCode:     get(c.atcoCode),
		CommonName:   get(c.commonName),
		LocalityName: get(c.localityName),
		StopType:     get(c.stopType),
		Status:       get(c.status),
		Latitude:     get(c.latitude),
		Longitude:    get(c.longitude),
	}
}

func isEmptyHeader(header []string) bool {
	for _, name := range header {
		if cleanField(name) != "" {
			return false
		}
	}

	return true
}

// NaiveParser splits every line on commas. Quoted fields containing commas are
// not supported and will shift the remaining columns.
type NaiveParser struct{}

func (NaiveParser) ScanRecords(source string, text string, fn func(StopRecord) bool) error {
	var index columnIndex
	headerFound := false
	rows := 0

	remaining := text
	lineNumber := 0

	for len(remaining) > 0 {
		var line string
		line, remaining, _ = strings.Cut(remaining, "\n")
		lineNumber++

		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, ",")

		if !headerFound {
			if isEmptyHeader(values) {
				return stoperrors.NewParseError(source, lineNumber, "header row is empty")
			}

			index = newColumnIndex(values)
			headerFound = true
			continue
		}

		rows++
		if !fn(index.fields(values).toStopRecord()) {
			return nil
		}
	}

	if !headerFound {
		return stoperrors.NewParseError(source, 0, "missing header row")
	}
	if rows == 0 {
		return stoperrors.NewParseError(source, 0, "no data rows")
	}

	return nil
}
