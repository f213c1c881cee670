package contracts

import "errors"

// ErrEmptyInput is returned when a dataset has no data rows. Stages never
// fail on degenerate columns; a completely empty dataset is the one condition
// signaled explicitly instead of crashing deep inside a stage.
var ErrEmptyInput = errors.New("empty input: dataset has no data rows")

// DatasetStats is a read-only summary of a raw dataset, recomputed from
// scratch whenever the dataset changes.
//
// Outliers uses the 3-sigma rule, a coarser definition than the IQR capping
// in the pipeline. The two are intentionally independent.
type DatasetStats struct {
	RowCount      int `json:"row_count"`
	ColumnCount   int `json:"column_count"`
	MissingValues int `json:"missing_values"`
	Duplicates    int `json:"duplicates"`
	Outliers      int `json:"outliers"`
}

// Clean reports whether the dataset needs no treatment before modeling.
func (s DatasetStats) Clean() bool {
	return s.MissingValues == 0 && s.Duplicates == 0 && s.Outliers == 0
}
