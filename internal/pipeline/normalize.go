package pipeline

import "github.com/baramlab/aqlens/internal/contracts"

// Normalize min-max scales each numeric column to [0, 1]. A column with a
// degenerate range (max == min) maps every value to 0.
//
// Data already spanning exactly [0, 1] passes through unchanged, so the stage
// is idempotent on its own output when the extremes 0 and 1 are present.
func Normalize(records []contracts.Record) []contracts.Record {
	out := cloneAll(records)

	for _, col := range contracts.NumericColumns {
		values := columnValues(records, col)
		if len(values) == 0 {
			continue
		}

		min, max := values[0], values[0]
		for _, v := range values[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}

		span := max - min
		for _, rec := range out {
			v, valid := rec.Float(col)
			if !valid {
				continue
			}
			if span == 0 {
				rec[col] = contracts.Num(0)
			} else {
				rec[col] = contracts.Num((v - min) / span)
			}
		}
	}

	return out
}
