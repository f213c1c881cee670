// Package quality computes display-oriented dataset statistics over raw,
// unprocessed records.
package quality

import (
	"encoding/json"
	"math"

	"github.com/baramlab/aqlens/internal/contracts"
)

// outlierSigma is the 3-sigma display rule. It is intentionally independent
// of the IQR capping rule the pipeline treats outliers with.
const outlierSigma = 3.0

// Describe summarizes a raw row set for display: row/column counts, missing
// values, duplicates and 3-sigma outliers. The summary is recomputed from
// scratch on every call.
func Describe(records []contracts.Record) contracts.DatasetStats {
	stats := contracts.DatasetStats{RowCount: len(records)}
	if len(records) == 0 {
		return stats
	}

	stats.ColumnCount = len(records[0])
	stats.MissingValues = countMissing(records)
	stats.Duplicates = len(records) - countDistinct(records)
	stats.Outliers = countOutliers(records)

	return stats
}

// countMissing counts empty cells across all fields of all rows.
func countMissing(records []contracts.Record) int {
	count := 0
	for _, rec := range records {
		for _, cell := range rec {
			if !cell.IsNum && cell.Raw == "" {
				count++
			}
		}
	}
	return count
}

// countDistinct counts rows by their canonical JSON serialization.
func countDistinct(records []contracts.Record) int {
	seen := make(map[string]bool, len(records))
	for _, rec := range records {
		// Map keys marshal in sorted order, so the serialization is stable.
		data, err := json.Marshal(rec)
		if err != nil {
			continue
		}
		seen[string(data)] = true
	}
	return len(seen)
}

// countOutliers counts values more than 3 standard deviations from their
// column mean, over the fixed numeric column set.
func countOutliers(records []contracts.Record) int {
	count := 0

	for _, col := range contracts.NumericColumns {
		var values []float64
		for _, rec := range records {
			if v, ok := rec.Float(col); ok {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}

		var sum float64
		for _, v := range values {
			sum += v
		}
		mean := sum / float64(len(values))

		var variance float64
		for _, v := range values {
			diff := v - mean
			variance += diff * diff
		}
		stddev := math.Sqrt(variance / float64(len(values)))
		if stddev == 0 {
			continue
		}

		for _, v := range values {
			if math.Abs(v-mean) > outlierSigma*stddev {
				count++
			}
		}
	}

	return count
}
