package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/baramlab/aqlens/internal/contracts"
	"github.com/baramlab/aqlens/internal/ingest"
	"github.com/baramlab/aqlens/internal/metrics"
	"github.com/baramlab/aqlens/internal/pipeline"
	"github.com/baramlab/aqlens/internal/quality"
	"github.com/baramlab/aqlens/pkg/config"
	"github.com/baramlab/aqlens/pkg/logger"
)

// DatasetHandler handles dataset upload and analysis endpoints
// ⭐ SSOT: 데이터셋 API 핸들러는 이 구조체에서만
type DatasetHandler struct {
	runner *pipeline.Runner
	config *config.Config
	logger *logger.Logger
}

// NewDatasetHandler creates a new dataset handler
func NewDatasetHandler(runner *pipeline.Runner, cfg *config.Config, log *logger.Logger) *DatasetHandler {
	return &DatasetHandler{
		runner: runner,
		config: cfg,
		logger: log,
	}
}

// StatsResponse describes an uploaded dataset before any treatment.
type StatsResponse struct {
	Stats   contracts.DatasetStats `json:"stats"`
	Preview []contracts.Record     `json:"preview"`
}

// Stats returns raw dataset statistics and a head preview
// POST /api/dataset/stats
func (h *DatasetHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.readDataset(w, r)
	if !ok {
		return
	}

	stats := quality.Describe(ds.Records)

	h.logger.WithFields(map[string]interface{}{
		"rows":    stats.RowCount,
		"columns": stats.ColumnCount,
		"missing": stats.MissingValues,
	}).Info("Dataset statistics computed")

	respondJSON(w, http.StatusOK, StatsResponse{
		Stats:   stats,
		Preview: ds.Head(h.config.PreviewRows),
	})
}

// AnalyzeResponse is the full exploratory analysis of an uploaded dataset.
type AnalyzeResponse struct {
	RawStats     contracts.DatasetStats       `json:"raw_stats"`
	Correlations metrics.CorrelationMatrix    `json:"correlations"`
	Processed    int                          `json:"processed_rows"`
	Preview      []contracts.EngineeredRecord `json:"preview"`
}

// Analyze runs the preprocessing pipeline and exploratory statistics
// POST /api/dataset/analyze
func (h *DatasetHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.readDataset(w, r)
	if !ok {
		return
	}

	rawStats := quality.Describe(ds.Records)

	engineered, err := h.runner.Run(ds.Records)
	if err != nil {
		h.logger.WithError(err).Error("Pipeline failed")
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	processed := make([]contracts.Record, len(engineered))
	for i, e := range engineered {
		processed[i] = e.Record
	}

	preview := engineered
	if len(preview) > h.config.PreviewRows {
		preview = preview[:h.config.PreviewRows]
	}

	respondJSON(w, http.StatusOK, AnalyzeResponse{
		RawStats:     rawStats,
		Correlations: metrics.Correlations(processed),
		Processed:    len(processed),
		Preview:      preview,
	})
}

// readDataset reads CSV content from the request body or a multipart "file"
// field, bounded by the configured upload limit.
func (h *DatasetHandler) readDataset(w http.ResponseWriter, r *http.Request) (*ingest.Dataset, bool) {
	return readDataset(w, r, h.config, h.logger)
}

// Shared helpers

func readDataset(w http.ResponseWriter, r *http.Request, cfg *config.Config, log *logger.Logger) (*ingest.Dataset, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, cfg.MaxUploadBytes)

	var reader io.Reader = r.Body
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			respondError(w, http.StatusBadRequest, "Multipart upload must carry a 'file' field")
			return nil, false
		}
		defer file.Close()
		reader = file
	}

	content, err := io.ReadAll(reader)
	if err != nil {
		respondError(w, http.StatusRequestEntityTooLarge, "Upload exceeds the size limit")
		return nil, false
	}

	ds, err := ingest.ParseDataset(string(content))
	if err != nil {
		if errors.Is(err, contracts.ErrEmptyInput) {
			respondError(w, http.StatusBadRequest, "Uploaded file has no data rows")
			return nil, false
		}
		log.WithError(err).Error("Failed to parse upload")
		respondError(w, http.StatusBadRequest, "Failed to parse CSV")
		return nil, false
	}

	return ds, true
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
