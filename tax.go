package wallet

import "fmt"

// TaxReport is an estimate of the tax due on realized gains and income.
//
// It is a simplified estimate from a flat rate table, not a filing-grade
// computation: loss carry-forward, deduction limits and wash-sale rules are
// ignored.
type TaxReport struct {
	Jurisdiction   Jurisdiction `json:"jurisdiction"`
	ShortTermGains Money        `json:"shortTermGains"`
	LongTermGains  Money        `json:"longTermGains"`
	TaxableIncome  Money        `json:"taxableIncome"`
	EstimatedTax   Money        `json:"estimatedTax"`
}

// EstimateTax buckets realized gain events into short and long term gains,
// and income, then applies the jurisdiction rates.
//
// Each bucket is floored at zero before being taxed, so the estimated tax is
// never negative.
func EstimateTax(events []RealizedGainEvent, j Jurisdiction, cfg TaxConfig) (TaxReport, error) {
	j, err := ParseJurisdiction(string(j))
	if err != nil {
		return TaxReport{}, err
	}
	rates, ok := cfg.Rates[j]
	if !ok {
		return TaxReport{}, fmt.Errorf("%w: no tax rates for %s", ErrInvalidConfiguration, j)
	}

	var currency string
	for _, e := range events {
		if c := e.Gain.Currency(); c != "" {
			currency = c
			break
		}
	}
	report := TaxReport{
		Jurisdiction:   j,
		ShortTermGains: M(0, currency),
		LongTermGains:  M(0, currency),
		TaxableIncome:  M(0, currency),
	}

	for _, e := range events {
		switch {
		case e.Kind == IncomeGain:
			report.TaxableIncome = report.TaxableIncome.Add(e.Gain)
		case e.HoldingPeriodDays < cfg.ShortTermThresholdDays:
			report.ShortTermGains = report.ShortTermGains.Add(e.Gain)
		default:
			report.LongTermGains = report.LongTermGains.Add(e.Gain)
		}
	}

	report.EstimatedTax = report.ShortTermGains.Floor().Scale(rates.ShortTerm).
		Add(report.LongTermGains.Floor().Scale(rates.LongTerm)).
		Add(report.TaxableIncome.Floor().Scale(rates.Income))
	return report, nil
}
