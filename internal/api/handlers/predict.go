package handlers

import (
	"math"
	"net/http"

	"github.com/baramlab/aqlens/internal/contracts"
	"github.com/baramlab/aqlens/internal/model"
	"github.com/baramlab/aqlens/internal/pipeline"
	"github.com/baramlab/aqlens/pkg/config"
	"github.com/baramlab/aqlens/pkg/logger"
)

// PredictHandler handles the prediction endpoint
type PredictHandler struct {
	runner *pipeline.Runner
	models []model.Model
	config *config.Config
	logger *logger.Logger
}

// NewPredictHandler creates a new predict handler
func NewPredictHandler(runner *pipeline.Runner, models []model.Model, cfg *config.Config, log *logger.Logger) *PredictHandler {
	return &PredictHandler{
		runner: runner,
		models: models,
		config: cfg,
		logger: log,
	}
}

// ModelScore is one model's result with JSON-safe metrics: an undefined R²
// (constant actuals) is rendered as null instead of leaking NaN to clients.
type ModelScore struct {
	ModelName         string                        `json:"model_name"`
	MAE               *float64                      `json:"mae"`
	RMSE              *float64                      `json:"rmse"`
	R2                *float64                      `json:"r2"`
	Predictions       []float64                     `json:"predictions"`
	Actuals           []float64                     `json:"actuals"`
	FeatureImportance []contracts.FeatureImportance `json:"feature_importance"`
}

// PredictResponse holds both mock models' scores on the held-out split.
type PredictResponse struct {
	TrainRows int          `json:"train_rows"`
	TestRows  int          `json:"test_rows"`
	Results   []ModelScore `json:"results"`
}

// Predict runs pipeline → split → both models on an uploaded dataset
// POST /api/predict
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	ds, ok := readDataset(w, r, h.config, h.logger)
	if !ok {
		return
	}

	engineered, err := h.runner.Run(ds.Records)
	if err != nil {
		h.logger.WithError(err).Error("Pipeline failed")
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	split := pipeline.TrainTestSplit(engineered, h.config.TrainRatio)
	if len(split.Train) == 0 || len(split.Test) == 0 {
		respondError(w, http.StatusUnprocessableEntity, "Dataset too small for a train/test split")
		return
	}

	resp := PredictResponse{
		TrainRows: len(split.Train),
		TestRows:  len(split.Test),
	}

	for _, m := range h.models {
		result := model.Evaluate(m, split.Test, h.logger.Zerolog())
		resp.Results = append(resp.Results, toScore(result))
	}

	respondJSON(w, http.StatusOK, resp)
}

// toScore converts a ModelResult into its JSON-safe form.
func toScore(result contracts.ModelResult) ModelScore {
	return ModelScore{
		ModelName:         result.ModelName,
		MAE:               finiteOrNil(result.MAE),
		RMSE:              finiteOrNil(result.RMSE),
		R2:                finiteOrNil(result.R2),
		Predictions:       result.Predictions,
		Actuals:           result.Actuals,
		FeatureImportance: result.FeatureImportance,
	}
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
