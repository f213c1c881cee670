package contracts

import (
	"encoding/json"
	"math"
	"strconv"
)

// DateColumn is the only non-numeric column of a reading.
const DateColumn = "Date"

// TargetColumn is the value the predictors are scored against.
const TargetColumn = "AQI"

// NumericColumns is the fixed set of numeric columns every stage operates on
// ⭐ SSOT: 수치 컬럼 집합은 여기서만 정의
var NumericColumns = []string{
	"PM25", "PM10", "NO2", "SO2", "CO", "O3",
	"Temperature", "Humidity", "WindSpeed", "AQI",
}

// DedupeColumns is the composite key used for duplicate removal. Records that
// differ only in the remaining columns are still duplicates under this key.
var DedupeColumns = []string{"Date", "PM25", "PM10", "NO2", "SO2", "CO"}

// Cell is one parsed CSV field. A cell is numeric when the raw text parsed as
// a number; otherwise the trimmed raw text is kept as-is, including the empty
// string for absent values.
type Cell struct {
	Num   float64
	Raw   string
	IsNum bool
}

// Num returns a numeric cell.
func Num(v float64) Cell {
	return Cell{Num: v, IsNum: true}
}

// Raw returns a non-numeric cell holding the original text.
func Raw(s string) Cell {
	return Cell{Raw: s}
}

// Float returns the numeric value and whether the cell holds a usable number.
// NaN is treated as not usable.
func (c Cell) Float() (float64, bool) {
	if !c.IsNum || math.IsNaN(c.Num) {
		return 0, false
	}
	return c.Num, true
}

// String returns the raw text for non-numeric cells and the formatted number
// for numeric ones.
func (c Cell) String() string {
	if c.IsNum {
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	}
	return c.Raw
}

// MarshalJSON renders numeric cells as JSON numbers and everything else as a
// string, so previews look like the original readings.
func (c Cell) MarshalJSON() ([]byte, error) {
	if v, ok := c.Float(); ok {
		return json.Marshal(v)
	}
	return json.Marshal(c.Raw)
}

// UnmarshalJSON accepts either a JSON number or a string.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*c = Num(num)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Raw(s)
	return nil
}

// Record is one observation keyed by column name. Records are never mutated
// in place: every pipeline stage clones before writing.
type Record map[string]Cell

// Float returns the numeric value of a column and whether it is usable.
// Absent columns report false.
func (r Record) Float(col string) (float64, bool) {
	return r[col].Float()
}

// Date returns the raw Date column text.
func (r Record) Date() string {
	return r[DateColumn].Raw
}

// Clone returns a shallow copy safe to modify.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
