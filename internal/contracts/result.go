package contracts

import "math"

// FeatureImportance is one row of a model's importance table.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// ModelResult holds one model's predictions on the held-out set and its
// evaluation against the actual AQI values. Predictions and Actuals are
// aligned index-for-index.
type ModelResult struct {
	ModelName         string              `json:"model_name"`
	MAE               float64             `json:"mae"`
	RMSE              float64             `json:"rmse"`
	R2                float64             `json:"r2"`
	Predictions       []float64           `json:"predictions"`
	Actuals           []float64           `json:"actuals"`
	FeatureImportance []FeatureImportance `json:"feature_importance"`
}

// HasValidScore reports whether every metric is a real number. R² goes NaN
// when all actual values are identical, and callers must be able to detect
// that instead of displaying it.
func (m ModelResult) HasValidScore() bool {
	return !math.IsNaN(m.MAE) && !math.IsNaN(m.RMSE) && !math.IsNaN(m.R2)
}
