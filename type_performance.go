package wallet

import "github.com/shopspring/decimal"

// Performance holds the first and the last value of a wallet value history.
type Performance struct {
	Start Money `json:"start"`
	End   Money `json:"end"`
}

// NewPerformance returns the performance over a value history, oldest first.
// It is zero for a history shorter than two values.
func NewPerformance(history []decimal.Decimal, currency string) Performance {
	if len(history) < 2 {
		return Performance{Start: M(0, currency), End: M(0, currency)}
	}
	return Performance{
		Start: M(history[0], currency),
		End:   M(history[len(history)-1], currency),
	}
}

func (p Performance) Change() Money {
	return p.End.Sub(p.Start)
}

// Percent returns the change relative to the start value, or zero if the
// start value is not positive.
func (p Performance) Percent() Percent {
	if !p.Start.IsPositive() {
		return 0
	}
	return PercentOf(p.Change().Ratio(p.Start).InexactFloat64())
}
