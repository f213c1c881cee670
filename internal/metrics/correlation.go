package metrics

import (
	"math"

	"github.com/baramlab/aqlens/internal/contracts"
)

// CorrelationMatrix holds pairwise Pearson correlations over the fixed
// numeric column set. Values[i][j] is the correlation of Columns[i] with
// Columns[j].
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// At returns the correlation between two named columns, 0 for unknown names.
func (m CorrelationMatrix) At(a, b string) float64 {
	ai, bi := -1, -1
	for i, col := range m.Columns {
		if col == a {
			ai = i
		}
		if col == b {
			bi = i
		}
	}
	if ai < 0 || bi < 0 {
		return 0
	}
	return m.Values[ai][bi]
}

// Correlations computes the Pearson correlation matrix over the fixed numeric
// columns. Degenerate pairs (zero variance in either column, no paired
// values) are reported as 0 instead of NaN so one dead column never poisons
// the whole matrix.
func Correlations(records []contracts.Record) CorrelationMatrix {
	cols := contracts.NumericColumns
	values := make([][]float64, len(cols))

	for i := range cols {
		values[i] = make([]float64, len(cols))
		for j := range cols {
			values[i][j] = pearson(records, cols[i], cols[j])
		}
	}

	return CorrelationMatrix{Columns: cols, Values: values}
}

// pearson computes covariance / (σa·σb) over records where both columns hold
// usable numbers.
func pearson(records []contracts.Record, colA, colB string) float64 {
	var xs, ys []float64
	for _, rec := range records {
		x, okX := rec.Float(colA)
		y, okY := rec.Float(colB)
		if okX && okY {
			xs = append(xs, x)
			ys = append(ys, y)
		}
	}

	n := float64(len(xs))
	if n == 0 {
		return 0
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	// Self-correlation is exactly 1 whenever the column has any variance.
	if colA == colB {
		if varX > 0 {
			return 1
		}
		return 0
	}

	r := cov / (math.Sqrt(varX) * math.Sqrt(varY))
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}

	return r
}
