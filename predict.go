package wallet

import "github.com/shopspring/decimal"

// MinHistory is the shortest history PredictValue fits a trend on.
const MinHistory = 7

// Trend is the direction of a prediction.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// PredictionResult is a linear projection of a value history.
type PredictionResult struct {
	Predicted  decimal.Decimal `json:"predicted"`
	Confidence float64         `json:"confidence"` // Confidence is the R² of the fit, within [0, 1].
	Trend      Trend           `json:"trend"`
	Slope      decimal.Decimal `json:"slope"`
	Intercept  decimal.Decimal `json:"intercept"`
	RSquared   float64         `json:"rSquared"`
}

// PredictValue fits y = slope·x + intercept over the history indexes
// (x = 0..n-1) with ordinary least squares and projects the value at
// x = n + periodsAhead. The projection is never negative.
//
// A history shorter than MinHistory is not fitted: the last value (or 0)
// is returned with a zero confidence and a stable trend.
func PredictValue(history []decimal.Decimal, periodsAhead int) PredictionResult {
	n := len(history)
	if n < MinHistory {
		last := decimal.Zero
		if n > 0 {
			last = history[n-1]
		}
		return PredictionResult{Predicted: last, Trend: TrendStable}
	}

	var sumX, sumY, sumXY, sumXX decimal.Decimal
	for i, y := range history {
		x := decimal.NewFromInt(int64(i))
		sumX = sumX.Add(x)
		sumY = sumY.Add(y)
		sumXY = sumXY.Add(x.Mul(y))
		sumXX = sumXX.Add(x.Mul(x))
	}
	count := decimal.NewFromInt(int64(n))
	// denominator is n²(n²-1)/12, never zero for n >= 2.
	slope := count.Mul(sumXY).Sub(sumX.Mul(sumY)).Div(count.Mul(sumXX).Sub(sumX.Mul(sumX)))
	intercept := sumY.Sub(slope.Mul(sumX)).Div(count)

	mean := sumY.Div(count)
	var ssRes, ssTot decimal.Decimal
	for i, y := range history {
		residual := y.Sub(slope.Mul(decimal.NewFromInt(int64(i))).Add(intercept))
		deviation := y.Sub(mean)
		ssRes = ssRes.Add(residual.Mul(residual))
		ssTot = ssTot.Add(deviation.Mul(deviation))
	}
	rSquared := 1.0
	if !ssTot.IsZero() {
		rSquared = decimal.NewFromInt(1).Sub(ssRes.Div(ssTot)).InexactFloat64()
	}

	predicted := slope.Mul(decimal.NewFromInt(int64(n + periodsAhead))).Add(intercept)
	predicted = decimal.Max(predicted, decimal.Zero)

	last := history[n-1]
	trend := TrendStable
	switch predicted.Cmp(last) {
	case 1:
		trend = TrendUp
	case -1:
		trend = TrendDown
	}

	return PredictionResult{
		Predicted:  predicted,
		Confidence: min(max(rSquared, 0), 1),
		Trend:      trend,
		Slope:      slope,
		Intercept:  intercept,
		RSquared:   rSquared,
	}
}
