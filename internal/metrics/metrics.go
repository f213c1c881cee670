// Package metrics implements the regression evaluation math used to score
// predictors: MAE, RMSE, R² and the Pearson correlation matrix.
package metrics

import "math"

// MAE returns the mean absolute error over paired sequences. NaN when there
// are no pairs.
func MAE(predictions, actuals []float64) float64 {
	n := pairCount(predictions, actuals)
	if n == 0 {
		return math.NaN()
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += math.Abs(predictions[i] - actuals[i])
	}

	return sum / float64(n)
}

// RMSE returns the root mean squared error over paired sequences. NaN when
// there are no pairs.
func RMSE(predictions, actuals []float64) float64 {
	n := pairCount(predictions, actuals)
	if n == 0 {
		return math.NaN()
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := predictions[i] - actuals[i]
		sum += diff * diff
	}

	return math.Sqrt(sum / float64(n))
}

// R2 returns the coefficient of determination,
// 1 − Σ(actual−prediction)² / Σ(actual−mean)².
//
// When every actual value is identical the denominator is zero and the result
// is NaN. Callers must guard with math.IsNaN rather than display it.
func R2(predictions, actuals []float64) float64 {
	n := pairCount(predictions, actuals)
	if n == 0 {
		return math.NaN()
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += actuals[i]
	}
	mean := sum / float64(n)

	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		res := actuals[i] - predictions[i]
		tot := actuals[i] - mean
		ssRes += res * res
		ssTot += tot * tot
	}

	if ssTot == 0 {
		return math.NaN()
	}

	return 1 - ssRes/ssTot
}

// pairCount is the number of aligned pairs the metrics run over.
func pairCount(a, b []float64) int {
	if len(a) < len(b) {
		return len(a)
	}
	return len(b)
}
