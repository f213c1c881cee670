package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baramlab/aqlens/internal/contracts"
)

const sampleCSV = `Date,PM25,PM10,NO2,SO2,CO,O3,Temperature,Humidity,WindSpeed,AQI
2024-01-01,35.2,60.1,22.0,8.5,0.9,31.0,12.5,55.0,3.2,95
2024-01-02,,62.3,24.1,9.0,1.1,29.5,13.0,58.0,2.8,101
2024-01-03,40.8,abc,25.5,8.8,1.0,30.2,12.8,60.0,3.0,110
`

func TestParseDataset(t *testing.T) {
	ds, err := ParseDataset(sampleCSV)
	require.NoError(t, err)
	require.Len(t, ds.Records, 3)

	assert.Equal(t, 11, len(ds.Header))
	assert.Equal(t, "Date", ds.Header[0])

	first := ds.Records[0]
	assert.Equal(t, "2024-01-01", first.Date())

	pm25, ok := first.Float("PM25")
	require.True(t, ok)
	assert.Equal(t, 35.2, pm25)

	aqi, ok := first.Float("AQI")
	require.True(t, ok)
	assert.Equal(t, 95.0, aqi)
}

func TestParseDataset_NonStrictValues(t *testing.T) {
	ds, err := ParseDataset(sampleCSV)
	require.NoError(t, err)

	// Empty field stays raw, deferred to imputation
	_, ok := ds.Records[1].Float("PM25")
	assert.False(t, ok, "empty PM25 must not be numeric")

	// Malformed field stays raw as-is
	_, ok = ds.Records[2].Float("PM10")
	assert.False(t, ok, "malformed PM10 must not be numeric")
	assert.Equal(t, "abc", ds.Records[2]["PM10"].Raw)
}

func TestParseDataset_ShortLines(t *testing.T) {
	text := "Date,PM25,PM10\n2024-01-01,10\n"
	ds, err := ParseDataset(text)
	require.NoError(t, err)
	require.Len(t, ds.Records, 1)

	rec := ds.Records[0]
	v, ok := rec.Float("PM25")
	require.True(t, ok)
	assert.Equal(t, 10.0, v)

	// The missing position is undefined, not an error
	_, present := rec["PM10"]
	assert.False(t, present, "short line must leave trailing columns absent")
}

func TestParseDataset_EmptyInput(t *testing.T) {
	for _, text := range []string{"", "Date,PM25,PM10\n", "   "} {
		_, err := ParseDataset(text)
		assert.True(t, errors.Is(err, contracts.ErrEmptyInput), "input %q should be ErrEmptyInput, got %v", text, err)
	}
}

func TestParseDataset_TrimsWhitespace(t *testing.T) {
	text := "Date, PM25 ,PM10\n2024-01-01, 12.5 , 30\n"
	ds, err := ParseDataset(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"Date", "PM25", "PM10"}, ds.Header)

	v, ok := ds.Records[0].Float("PM25")
	require.True(t, ok)
	assert.Equal(t, 12.5, v)
}

func TestDataset_Head(t *testing.T) {
	ds, err := ParseDataset(sampleCSV)
	require.NoError(t, err)

	assert.Len(t, ds.Head(2), 2)
	assert.Len(t, ds.Head(10), 3, "head larger than dataset returns all rows")
}

func TestWritePredictions(t *testing.T) {
	ds, err := ParseDataset(sampleCSV)
	require.NoError(t, err)

	preds := []float64{90.1234, 100.5, 108}
	out, err := WritePredictions(ds.Header, ds.Records, preds)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], PredictedColumn))
	assert.True(t, strings.HasSuffix(lines[1], "90.1234"))

	// Raw strings survive the round trip untouched
	assert.Contains(t, lines[3], "abc")
}

func TestWritePredictions_LengthMismatch(t *testing.T) {
	ds, err := ParseDataset(sampleCSV)
	require.NoError(t, err)

	_, err = WritePredictions(ds.Header, ds.Records, []float64{1.0})
	assert.Error(t, err)
}
