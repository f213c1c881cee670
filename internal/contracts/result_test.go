package contracts

import (
	"math"
	"testing"
)

func TestModelResult_HasValidScore(t *testing.T) {
	tests := []struct {
		name   string
		result ModelResult
		want   bool
	}{
		{
			name:   "valid scores",
			result: ModelResult{ModelName: "Random Forest", MAE: 1.2, RMSE: 1.8, R2: 0.93},
			want:   true,
		},
		{
			name:   "perfect fit",
			result: ModelResult{ModelName: "XGBoost", MAE: 0, RMSE: 0, R2: 1},
			want:   true,
		},
		{
			name:   "constant actuals make R2 undefined",
			result: ModelResult{ModelName: "XGBoost", MAE: 0.5, RMSE: 0.6, R2: math.NaN()},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.HasValidScore(); got != tt.want {
				t.Errorf("HasValidScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDatasetStats_Clean(t *testing.T) {
	clean := DatasetStats{RowCount: 100, ColumnCount: 11}
	if !clean.Clean() {
		t.Error("stats without issues should be clean")
	}

	dirty := DatasetStats{RowCount: 100, ColumnCount: 11, MissingValues: 3}
	if dirty.Clean() {
		t.Error("stats with missing values should not be clean")
	}
}
