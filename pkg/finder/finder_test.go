package finder

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/stopfinder/pkg/geodesy"
	"github.com/travigo/stopfinder/pkg/stoperrors"
	"github.com/travigo/stopfinder/pkg/stops"
	"github.com/urfave/cli/v2"
)

var fixtureRecords = stops.Records{
	{AtcoCode: "490000001A", CommonName: "Oxford Circus", LocalityName: "London", StopType: "BCT", Status: "Active", Latitude: 51.5074, Longitude: -0.1278},
	{AtcoCode: "1800NB00001", CommonName: "Piccadilly Gardens", LocalityName: "Manchester", StopType: "BCS", Status: "Active", Latitude: 53.4808, Longitude: -2.2426},
	{AtcoCode: "1800NB00002", CommonName: "Oxford Road", LocalityName: "Manchester", StopType: "BCT", Status: "Inactive", Latitude: 53.4740, Longitude: -2.2410},
}

const fixtureCSV = "ATCOCode,CommonName,LocalityName,Latitude,Longitude,Status\n" +
	"490000001A,Oxford Circus,London,51.5074,-0.1278,Active\n" +
	"1800NB00001,Piccadilly Gardens,Manchester,53.4808,-2.2426,Active\n" +
	"1800NB00002,Oxford Road,Manchester,53.4740,-2.2410,Inactive\n"

func TestSearch(t *testing.T) {
	results, err := New(fixtureRecords).Search("oxford", nil)
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Oxford Circus", results[0].CommonName)
	assert.Equal(t, "Oxford Road", results[1].CommonName)
}

func TestSearchWithFilter(t *testing.T) {
	filter, err := stops.CompileFilter(`Status == "Active"`)
	require.NoError(t, err)

	results, err := New(fixtureRecords).Search("oxford", filter)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "490000001A", results[0].AtcoCode)
}

func TestSearchValidation(t *testing.T) {
	_, err := New(fixtureRecords).Search("  ", nil)

	assert.ErrorIs(t, err, stoperrors.ErrInvalidArgument)
}

func TestLookup(t *testing.T) {
	stopFinder := New(fixtureRecords)

	record, exists, err := stopFinder.Lookup("1800nb00001")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "Piccadilly Gardens", record.CommonName)

	_, exists, err = stopFinder.Lookup("missing")
	require.NoError(t, err)
	assert.False(t, exists)

	_, _, err = stopFinder.Lookup(stops.DefaultAtcoCode)
	assert.True(t, stoperrors.IsValidation(err))

	_, _, err = New(nil).Lookup("490000001A")
	assert.True(t, stoperrors.IsParse(err))
}

func TestJourney(t *testing.T) {
	journey, err := New(fixtureRecords).Journey(fixtureRecords[0], fixtureRecords[1])
	require.NoError(t, err)

	assert.InDelta(t, 162.8, journey.Distance.Miles, 0.1)
	assert.InDelta(t, journey.Distance.Miles*geodesy.KilometresPerMile, journey.Distance.Kilometres, 1e-9)
	require.Len(t, journey.Estimates, 3)
	assert.Equal(t, geodesy.TravelModeWalking, journey.Estimates[0].Mode)
	assert.Greater(t, journey.Estimates[0].Minutes, journey.Estimates[2].Minutes)
}

func TestJourneySameStop(t *testing.T) {
	journey, err := PlanJourney(fixtureRecords[1], fixtureRecords[1])
	require.NoError(t, err)

	assert.Equal(t, 0.0, journey.Distance.Miles)
	for _, estimate := range journey.Estimates {
		assert.Equal(t, 0, estimate.Minutes)
	}
}

func TestMeasure(t *testing.T) {
	measurement, err := Measure("51.5074,-0.1278", "53.4808,-2.2426", "bus")
	require.NoError(t, err)

	assert.Equal(t, geodesy.TravelModeBus, measurement.Estimate.Mode)
	assert.Equal(t, 651, measurement.Estimate.Minutes)

	_, err = Measure("51.5074", "53.4808,-2.2426", "bus")
	assert.True(t, stoperrors.IsValidation(err))

	_, err = Measure("51.5074,-0.1278", "53.4808,-2.2426", "hovercraft")
	assert.True(t, stoperrors.IsValidation(err))
}

func runCLI(t *testing.T, args ...string) (*bytes.Buffer, error) {
	t.Helper()

	output := &bytes.Buffer{}
	app := &cli.App{
		Name:     "stopfinder",
		Writer:   output,
		Commands: []*cli.Command{RegisterCLI()},
	}

	return output, app.Run(append([]string{"stopfinder"}, args...))
}

func writeFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stops.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o644))

	return path
}

func TestSearchCommand(t *testing.T) {
	output, err := runCLI(t, "stops", "search", "--source", writeFixture(t), "--filter", `LocalityName == "Manchester"`, "oxford")
	require.NoError(t, err)

	var results []stops.StopRecord
	require.NoError(t, json.Unmarshal(output.Bytes(), &results))

	require.Len(t, results, 1)
	assert.Equal(t, "1800NB00002", results[0].AtcoCode)
}

func TestJourneyCommand(t *testing.T) {
	output, err := runCLI(t, "stops", "journey", "--source", writeFixture(t), "--from", "490000001A", "--to", "1800NB00001")
	require.NoError(t, err)

	var journey Journey
	require.NoError(t, json.Unmarshal(output.Bytes(), &journey))

	assert.Equal(t, "Oxford Circus", journey.From.CommonName)
	assert.Equal(t, "Piccadilly Gardens", journey.To.CommonName)
	assert.InDelta(t, 162.8, journey.Distance.Miles, 0.1)
}

func TestJourneyCommandUnknownStop(t *testing.T) {
	_, err := runCLI(t, "stops", "journey", "--source", writeFixture(t), "--from", "490000001A", "--to", "nowhere")

	assert.ErrorIs(t, err, ErrStopNotFound)
}

func TestDistanceCommand(t *testing.T) {
	output, err := runCLI(t, "stops", "distance", "--from", "0,0", "--to", "0,0", "--mode", "cycling")
	require.NoError(t, err)

	var measurement Measurement
	require.NoError(t, json.Unmarshal(output.Bytes(), &measurement))

	assert.Equal(t, geodesy.TravelModeCycling, measurement.Estimate.Mode)
	assert.Equal(t, 0, measurement.Estimate.Minutes)
}
