package pipeline

import "github.com/baramlab/aqlens/internal/contracts"

// CapOutliers clamps each numeric column into [Q1−1.5·IQR, Q3+1.5·IQR], with
// the quartiles taken nearest-rank on the pre-capping values. In-range values
// pass through untouched.
func CapOutliers(records []contracts.Record) []contracts.Record {
	out := cloneAll(records)

	for _, col := range contracts.NumericColumns {
		q1, q3, ok := quartiles(columnValues(records, col))
		if !ok {
			continue
		}

		iqr := q3 - q1
		lower := q1 - 1.5*iqr
		upper := q3 + 1.5*iqr

		for _, rec := range out {
			v, valid := rec.Float(col)
			if !valid {
				continue
			}
			if v < lower {
				rec[col] = contracts.Num(lower)
			} else if v > upper {
				rec[col] = contracts.Num(upper)
			}
		}
	}

	return out
}
