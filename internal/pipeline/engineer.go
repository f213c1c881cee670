package pipeline

import (
	"time"

	"github.com/baramlab/aqlens/internal/contracts"
)

// dateLayouts are tried in order when parsing the Date column.
var dateLayouts = []string{"2006-01-02", "2006/01/02", "2006-01-02 15:04:05"}

// Engineer derives the model features from preprocessed records: calendar
// Month and DayOfWeek, the PM25/PM10 ratio, and one-step lags of PM25 and
// NO2.
//
// Boundary policies: the first record lags to its own values, a zero PM10
// divides by 1 instead, and an unparseable date leaves Month and DayOfWeek
// at 0.
func Engineer(records []contracts.Record) []contracts.EngineeredRecord {
	out := make([]contracts.EngineeredRecord, len(records))

	for i, rec := range records {
		eng := contracts.EngineeredRecord{Record: rec.Clone()}

		if t, ok := parseDate(rec.Date()); ok {
			eng.Month = int(t.Month())
			eng.DayOfWeek = int(t.Weekday()) // Sunday = 0
		}

		pm25, _ := rec.Float("PM25")
		pm10, _ := rec.Float("PM10")
		if pm10 == 0 {
			pm10 = 1
		}
		eng.PMRatio = pm25 / pm10

		// Lags read the previous record's already-normalized values; the
		// first record has no predecessor and lags to itself.
		prev := rec
		if i > 0 {
			prev = records[i-1]
		}
		eng.PM25Lag1, _ = prev.Float("PM25")
		eng.NO2Lag1, _ = prev.Float("NO2")

		out[i] = eng
	}

	return out
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
