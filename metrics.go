package wallet

import (
	"math"

	"github.com/shopspring/decimal"
)

// Volatility returns the population standard deviation of the period
// returns of a value history. Periods starting from a zero value are skipped.
// It returns 0 when fewer than two returns are available.
func Volatility(history []decimal.Decimal) float64 {
	var returns []float64
	for i := 1; i < len(history); i++ {
		prev := history[i-1]
		if prev.IsZero() {
			continue
		}
		returns = append(returns, history[i].Sub(prev).Div(prev).InexactFloat64())
	}
	if len(returns) < 2 {
		return 0
	}

	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	var variance float64
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	return math.Sqrt(variance / float64(len(returns)))
}

// Concentration returns the share of the largest position in the total
// value, in [0, 1]. Negative values are ignored. It returns 0 for an empty
// or worthless wallet.
func Concentration(values map[string]Money) float64 {
	var total, largest decimal.Decimal
	for _, v := range values {
		if !v.IsPositive() {
			continue
		}
		total = total.Add(v.Decimal())
		largest = decimal.Max(largest, v.Decimal())
	}
	if !total.IsPositive() {
		return 0
	}
	return largest.Div(total).InexactFloat64()
}

// NewAssetRatio returns the share of distinct assets in txs that are not
// in known, in [0, 1].
func NewAssetRatio(txs []Transaction, known map[string]struct{}) float64 {
	seen := make(map[string]struct{})
	var fresh int
	for _, tx := range txs {
		if _, ok := seen[tx.Asset]; ok {
			continue
		}
		seen[tx.Asset] = struct{}{}
		if _, ok := known[tx.Asset]; !ok {
			fresh++
		}
	}
	if len(seen) == 0 {
		return 0
	}
	return float64(fresh) / float64(len(seen))
}

// AverageTransactionValue returns the mean value of the buys, sells and
// income of txs, in the first currency of txs. Transfers and transactions
// priced in another currency are not valued.
func AverageTransactionValue(txs []Transaction) Money {
	total := M(0, currencyOf(txs))
	var n int64
	for _, tx := range txs {
		if tx.Type == TxTransfer || !tx.Value().Compatible(total) {
			continue
		}
		total = total.Add(tx.Value())
		n++
	}
	if n == 0 {
		return total
	}
	return total.Div(Q(n))
}
