// Package pipeline implements the deterministic preprocessing pipeline:
// impute → dedupe → cap-outliers → normalize → engineer-features.
//
// Every stage is a pure function: it takes a record slice and returns a new
// one, never mutating its input. The stages are order-dependent — capping
// expects imputed values and normalization expects capped values — so callers
// should normally go through Runner instead of sequencing stages by hand.
package pipeline

import (
	"sort"

	"github.com/baramlab/aqlens/internal/contracts"
)

// columnValues collects the usable numeric values of one column, in record
// order.
func columnValues(records []contracts.Record, col string) []float64 {
	var values []float64
	for _, rec := range records {
		if v, ok := rec.Float(col); ok {
			values = append(values, v)
		}
	}
	return values
}

// median returns the median of values, averaging the two middle values for
// even counts. ok is false when there are no values — an undefined median.
func median(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2, true
	}
	return sorted[mid], true
}

// quartiles returns nearest-rank Q1 and Q3 at floor(n*0.25) and floor(n*0.75)
// of the ascending sort, not interpolated.
func quartiles(values []float64) (q1, q3 float64, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}

	sorted := append([]float64{}, values...)
	sort.Float64s(sorted)

	n := len(sorted)
	q1 = sorted[n/4]
	q3 = sorted[n*3/4]
	return q1, q3, true
}

// cloneAll copies every record so a stage can write without touching its
// input.
func cloneAll(records []contracts.Record) []contracts.Record {
	out := make([]contracts.Record, len(records))
	for i, rec := range records {
		out[i] = rec.Clone()
	}
	return out
}
