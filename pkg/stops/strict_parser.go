package stops

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/travigo/stopfinder/pkg/stoperrors"
)

type strictRow struct {
	AtcoCode     string `csv:"ATCOCode"`
	CommonName   string `csv:"CommonName"`
	LocalityName string `csv:"LocalityName"`
	StopType     string `csv:"StopType"`
	Status       string `csv:"Status"`
	Latitude     string `csv:"Latitude"`
	Longitude    string `csv:"Longitude"`
}

// StrictParser reads RFC 4180 CSV, so quoted fields may contain commas. Unlike
// NaiveParser it reads the whole text before yielding the first record.
type StrictParser struct{}

func (StrictParser) ScanRecords(source string, text string, fn func(StopRecord) bool) error {
	reader := csv.NewReader(strings.NewReader(text))
	// Allow us to ignore those naughty records that have missing columns
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	lines, err := reader.ReadAll()
	if err != nil {
		var csvError *csv.ParseError
		if errors.As(err, &csvError) {
			return stoperrors.NewParseError(source, csvError.Line, csvError.Err.Error())
		}
		return stoperrors.NewParseError(source, 0, err.Error())
	}

	lines = dropBlankRows(lines)

	if len(lines) == 0 {
		return stoperrors.NewParseError(source, 0, "missing header row")
	}
	if isEmptyHeader(lines[0]) {
		return stoperrors.NewParseError(source, 1, "header row is empty")
	}
	if len(lines) == 1 {
		return stoperrors.NewParseError(source, 0, "no data rows")
	}

	// gocsv matches header names exactly, trim any stray whitespace first
	for i, name := range lines[0] {
		lines[0][i] = cleanField(name)
	}

	var rows []*strictRow
	if err := gocsv.UnmarshalCSV(&replayReader{lines: lines}, &rows); err != nil {
		return stoperrors.NewParseError(source, 0, err.Error())
	}

	for _, row := range rows {
		fields := rawStopFields{
			AtcoCode:     row.AtcoCode,
			CommonName:   row.CommonName,
			LocalityName: row.LocalityName,
			StopType:     row.StopType,
			Status:       row.Status,
			Latitude:     row.Latitude,
			Longitude:    row.Longitude,
		}

		if !fn(fields.toStopRecord()) {
			return nil
		}
	}

	return nil
}

// dropBlankRows removes whitespace only lines, which encoding/csv reads as a
// single empty field. Rows of empty columns such as ",,," are kept, matching
// NaiveParser.
func dropBlankRows(lines [][]string) [][]string {
	kept := lines[:0]

	for _, line := range lines {
		if len(line) == 1 && cleanField(line[0]) == "" {
			continue
		}
		kept = append(kept, line)
	}

	return kept
}

// replayReader hands already read csv lines to gocsv
type replayReader struct {
	lines    [][]string
	position int
}

func (r *replayReader) Read() ([]string, error) {
	if r.position >= len(r.lines) {
		return nil, io.EOF
	}

	line := r.lines[r.position]
	r.position++

	return line, nil
}

func (r *replayReader) ReadAll() ([][]string, error) {
	remaining := r.lines[r.position:]
	r.position = len(r.lines)

	return remaining, nil
}
