package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baramlab/aqlens/internal/contracts"
)

func rec(date string, values map[string]float64) contracts.Record {
	r := contracts.Record{contracts.DateColumn: contracts.Raw(date)}
	for col, v := range values {
		r[col] = contracts.Num(v)
	}
	return r
}

func TestDescribe_Empty(t *testing.T) {
	stats := Describe(nil)

	assert.Equal(t, 0, stats.RowCount)
	assert.Equal(t, 0, stats.ColumnCount)
	assert.True(t, stats.Clean())
}

func TestDescribe_Counts(t *testing.T) {
	records := []contracts.Record{
		rec("2024-01-01", map[string]float64{"PM25": 10, "PM10": 20}),
		rec("2024-01-02", map[string]float64{"PM25": 12, "PM10": 22}),
	}

	stats := Describe(records)

	assert.Equal(t, 2, stats.RowCount)
	assert.Equal(t, 3, stats.ColumnCount, "column count comes from the first row's keys")
	assert.Equal(t, 0, stats.MissingValues)
	assert.Equal(t, 0, stats.Duplicates)
}

func TestDescribe_MissingValues(t *testing.T) {
	records := []contracts.Record{
		{
			contracts.DateColumn: contracts.Raw("2024-01-01"),
			"PM25":               contracts.Raw(""),
			"PM10":               contracts.Num(20),
		},
		{
			contracts.DateColumn: contracts.Raw(""),
			"PM25":               contracts.Num(11),
			"PM10":               contracts.Raw("n/a"),
		},
	}

	stats := Describe(records)

	// Empty strings count as missing; non-empty malformed text does not
	assert.Equal(t, 2, stats.MissingValues)
}

func TestDescribe_Duplicates(t *testing.T) {
	a := rec("2024-01-01", map[string]float64{"PM25": 10})
	b := rec("2024-01-01", map[string]float64{"PM25": 10})
	c := rec("2024-01-02", map[string]float64{"PM25": 11})

	stats := Describe([]contracts.Record{a, b, c})

	assert.Equal(t, 1, stats.Duplicates, "fully identical rows count as duplicates")
}

func TestDescribe_Outliers(t *testing.T) {
	// 20 values near 10 and one extreme spike in PM25
	var records []contracts.Record
	for i := 0; i < 20; i++ {
		records = append(records, rec("d", map[string]float64{"PM25": 10 + float64(i%3)}))
	}
	records = append(records, rec("d", map[string]float64{"PM25": 500}))

	stats := Describe(records)

	assert.Equal(t, 1, stats.Outliers)
}

func TestDescribe_ConstantColumnHasNoOutliers(t *testing.T) {
	records := []contracts.Record{
		rec("a", map[string]float64{"CO": 5}),
		rec("b", map[string]float64{"CO": 5}),
		rec("c", map[string]float64{"CO": 5}),
	}

	stats := Describe(records)

	assert.Equal(t, 0, stats.Outliers, "zero variance means no 3-sigma outliers")
}
