// Package model holds the two fixed-formula AQI scorers.
//
// These are not trained models: each one applies hand-picked linear weights
// to the engineered features and reports a static importance table. The
// Model interface is the seam where a real trainer could be substituted
// without touching the pipeline.
package model

import (
	"github.com/rs/zerolog"

	"github.com/baramlab/aqlens/internal/contracts"
	"github.com/baramlab/aqlens/internal/metrics"
)

// Model scores engineered records against the AQI target.
type Model interface {
	// Name identifies the model in results.
	Name() string

	// Predict produces one prediction per row, in order.
	Predict(rows []contracts.EngineeredRecord) []float64

	// Importances returns the model's static feature-importance table. The
	// values are hand-authored constants, not derived from the formula's
	// actual sensitivity.
	Importances() []contracts.FeatureImportance
}

// Evaluate runs a model over the held-out rows and scores the predictions
// against the actual AQI values.
func Evaluate(m Model, test []contracts.EngineeredRecord, log zerolog.Logger) contracts.ModelResult {
	predictions := m.Predict(test)

	actuals := make([]float64, len(test))
	for i, row := range test {
		actuals[i] = row.Actual()
	}

	result := contracts.ModelResult{
		ModelName:         m.Name(),
		MAE:               metrics.MAE(predictions, actuals),
		RMSE:              metrics.RMSE(predictions, actuals),
		R2:                metrics.R2(predictions, actuals),
		Predictions:       predictions,
		Actuals:           actuals,
		FeatureImportance: m.Importances(),
	}

	log.Info().
		Str("model", m.Name()).
		Int("test_rows", len(test)).
		Float64("mae", result.MAE).
		Float64("rmse", result.RMSE).
		Float64("r2", result.R2).
		Msg("model evaluated")

	return result
}
