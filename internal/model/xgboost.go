package model

import (
	"math"

	"github.com/baramlab/aqlens/internal/contracts"
)

// XGBoost is mock model "B": same shape as model "A" but with different fixed
// coefficients and a heavier weight on the engineered PM_Ratio feature.
type XGBoost struct{}

// NewXGBoost creates the mock XGBoost scorer.
func NewXGBoost() *XGBoost {
	return &XGBoost{}
}

// Name implements Model.
func (m *XGBoost) Name() string {
	return "XGBoost"
}

// Predict implements Model.
func (m *XGBoost) Predict(rows []contracts.EngineeredRecord) []float64 {
	predictions := make([]float64, len(rows))

	for i, row := range rows {
		pm25, _ := row.Feature("PM25")
		pm10, _ := row.Feature("PM10")
		no2, _ := row.Feature("NO2")
		o3, _ := row.Feature("O3")
		so2, _ := row.Feature("SO2")
		co, _ := row.Feature("CO")

		seasonal := math.Sin(2*math.Pi*float64(row.Month)/12 + math.Pi/6)

		predictions[i] = 0.31*pm25 +
			0.19*pm10 +
			0.12*no2 +
			0.07*o3 +
			0.05*so2 +
			0.04*co +
			0.16*row.PMRatio +
			0.06*seasonal
	}

	return predictions
}

// Importances implements Model.
func (m *XGBoost) Importances() []contracts.FeatureImportance {
	return []contracts.FeatureImportance{
		{Feature: "PM25", Importance: 0.29},
		{Feature: "PM_Ratio", Importance: 0.17},
		{Feature: "PM10", Importance: 0.16},
		{Feature: "NO2", Importance: 0.11},
		{Feature: "O3", Importance: 0.07},
		{Feature: "SO2", Importance: 0.05},
		{Feature: "CO", Importance: 0.05},
		{Feature: "NO2_lag1", Importance: 0.04},
		{Feature: "Month", Importance: 0.03},
		{Feature: "Humidity", Importance: 0.03},
	}
}
