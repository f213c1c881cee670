package pipeline

import "github.com/baramlab/aqlens/internal/contracts"

// Impute fills missing and non-numeric values of each numeric column with the
// column's median over its usable values.
//
// A column with zero usable values has an undefined median and is left
// untouched; the other columns still impute normally.
func Impute(records []contracts.Record) []contracts.Record {
	out := cloneAll(records)

	for _, col := range contracts.NumericColumns {
		med, ok := median(columnValues(records, col))
		if !ok {
			continue
		}

		for _, rec := range out {
			if _, valid := rec.Float(col); !valid {
				rec[col] = contracts.Num(med)
			}
		}
	}

	return out
}
