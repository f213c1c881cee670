package ingest

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/baramlab/aqlens/internal/contracts"
)

// PredictedColumn is appended to exported rows.
const PredictedColumn = "Predicted_AQI"

// WritePredictions serializes rows back to CSV with a Predicted_AQI column
// appended, one prediction per row in order.
func WritePredictions(header []string, rows []contracts.Record, predictions []float64) (string, error) {
	if len(rows) != len(predictions) {
		return "", fmt.Errorf("rows/predictions length mismatch: %d != %d", len(rows), len(predictions))
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)

	if err := w.Write(append(append([]string{}, header...), PredictedColumn)); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	line := make([]string, len(header)+1)
	for i, rec := range rows {
		for j, col := range header {
			if cell, ok := rec[col]; ok {
				line[j] = cell.String()
			} else {
				line[j] = ""
			}
		}
		line[len(header)] = fmt.Sprintf("%.4f", predictions[i])

		if err := w.Write(line); err != nil {
			return "", fmt.Errorf("write row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush: %w", err)
	}

	return buf.String(), nil
}
