package model

import (
	"math"

	"github.com/baramlab/aqlens/internal/contracts"
)

// RandomForest is mock model "A": a fixed weighted sum over the pollutant
// columns plus a sinusoidal seasonal term keyed on the month.
type RandomForest struct{}

// NewRandomForest creates the mock Random Forest scorer.
func NewRandomForest() *RandomForest {
	return &RandomForest{}
}

// Name implements Model.
func (m *RandomForest) Name() string {
	return "Random Forest"
}

// Predict implements Model.
func (m *RandomForest) Predict(rows []contracts.EngineeredRecord) []float64 {
	predictions := make([]float64, len(rows))

	for i, row := range rows {
		pm25, _ := row.Feature("PM25")
		pm10, _ := row.Feature("PM10")
		no2, _ := row.Feature("NO2")
		o3, _ := row.Feature("O3")
		so2, _ := row.Feature("SO2")
		co, _ := row.Feature("CO")

		seasonal := math.Sin(2 * math.Pi * float64(row.Month) / 12)

		predictions[i] = 0.36*pm25 +
			0.24*pm10 +
			0.14*no2 +
			0.09*o3 +
			0.06*so2 +
			0.05*co +
			0.02*row.PMRatio +
			0.04*seasonal
	}

	return predictions
}

// Importances implements Model.
func (m *RandomForest) Importances() []contracts.FeatureImportance {
	return []contracts.FeatureImportance{
		{Feature: "PM25", Importance: 0.34},
		{Feature: "PM10", Importance: 0.22},
		{Feature: "NO2", Importance: 0.13},
		{Feature: "O3", Importance: 0.09},
		{Feature: "SO2", Importance: 0.06},
		{Feature: "CO", Importance: 0.05},
		{Feature: "PM25_lag1", Importance: 0.04},
		{Feature: "Temperature", Importance: 0.03},
		{Feature: "Month", Importance: 0.02},
		{Feature: "PM_Ratio", Importance: 0.02},
	}
}
