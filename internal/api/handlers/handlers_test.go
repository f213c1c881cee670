package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baramlab/aqlens/internal/model"
	"github.com/baramlab/aqlens/internal/pipeline"
	"github.com/baramlab/aqlens/pkg/config"
	"github.com/baramlab/aqlens/pkg/logger"
)

const sampleCSV = `Date,PM25,PM10,NO2,SO2,CO,O3,Temperature,Humidity,WindSpeed,AQI
2024-01-01,35.2,60.1,22.0,8.5,0.9,31.0,12.5,55.0,3.2,95
2024-01-02,,62.3,24.1,9.0,1.1,29.5,13.0,58.0,2.8,101
2024-01-03,40.8,58.0,25.5,8.8,1.0,30.2,12.8,60.0,3.0,110
2024-01-04,38.1,61.5,23.2,8.6,0.95,30.8,12.6,56.0,3.1,98
2024-01-05,42.0,63.0,26.0,9.2,1.15,29.0,13.2,59.0,2.9,112
2024-01-06,36.5,59.5,22.8,8.4,0.92,31.2,12.4,54.0,3.3,96
2024-01-07,39.9,62.0,24.8,9.1,1.05,29.8,13.1,57.0,2.7,105
2024-01-08,37.2,60.8,23.5,8.7,0.98,30.5,12.7,55.5,3.0,99
2024-01-09,41.3,62.8,25.2,9.0,1.1,29.3,13.0,58.5,2.8,108
2024-01-10,35.8,59.0,22.4,8.3,0.9,31.5,12.3,53.5,3.4,94
`

func testConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		Env:            "development",
		MaxUploadBytes: 1 << 20,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
		PreviewRows:    5,
		TrainRatio:     0.8,
		LogLevel:       "error",
		LogFormat:      "json",
	}
}

func testDeps(t *testing.T) (*config.Config, *logger.Logger, *pipeline.Runner) {
	t.Helper()
	cfg := testConfig()
	log := logger.New(cfg)
	return cfg, log, pipeline.NewRunner(log.Zerolog())
}

func postCSV(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "text/csv")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestDatasetHandler_Stats(t *testing.T) {
	cfg, log, runner := testDeps(t)
	h := NewDatasetHandler(runner, cfg, log)

	rr := postCSV(t, h.Stats, sampleCSV)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp StatsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, 10, resp.Stats.RowCount)
	assert.Equal(t, 11, resp.Stats.ColumnCount)
	assert.Equal(t, 1, resp.Stats.MissingValues)
	assert.Len(t, resp.Preview, 5)
}

func TestDatasetHandler_Stats_EmptyUpload(t *testing.T) {
	cfg, log, runner := testDeps(t)
	h := NewDatasetHandler(runner, cfg, log)

	rr := postCSV(t, h.Stats, "Date,PM25\n")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "no data rows")
}

func TestDatasetHandler_Analyze(t *testing.T) {
	cfg, log, runner := testDeps(t)
	h := NewDatasetHandler(runner, cfg, log)

	rr := postCSV(t, h.Analyze, sampleCSV)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, 10, resp.Processed)
	assert.Len(t, resp.Correlations.Columns, 10)
	require.Len(t, resp.Correlations.Values, 10)

	// Diagonal of a live column is 1
	assert.Equal(t, 1.0, resp.Correlations.Values[0][0])
}

func TestPredictHandler_Predict(t *testing.T) {
	cfg, log, runner := testDeps(t)
	models := []model.Model{model.NewRandomForest(), model.NewXGBoost()}
	h := NewPredictHandler(runner, models, cfg, log)

	rr := postCSV(t, h.Predict, sampleCSV)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp PredictResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	assert.Equal(t, 8, resp.TrainRows)
	assert.Equal(t, 2, resp.TestRows)
	require.Len(t, resp.Results, 2)

	names := []string{resp.Results[0].ModelName, resp.Results[1].ModelName}
	assert.Contains(t, names, "Random Forest")
	assert.Contains(t, names, "XGBoost")

	for _, score := range resp.Results {
		assert.Len(t, score.Predictions, 2)
		assert.Len(t, score.Actuals, 2)
		assert.NotEmpty(t, score.FeatureImportance)
		require.NotNil(t, score.MAE)
		require.NotNil(t, score.RMSE)
	}
}

func TestPredictHandler_TooSmallDataset(t *testing.T) {
	cfg, log, runner := testDeps(t)
	h := NewPredictHandler(runner, []model.Model{model.NewRandomForest()}, cfg, log)

	// One row: the 80/20 split leaves an empty train set
	one := "Date,PM25,PM10,AQI\n2024-01-01,10,20,90\n"
	rr := postCSV(t, h.Predict, one)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}
