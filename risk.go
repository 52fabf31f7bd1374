package wallet

import (
	"fmt"
	"math"
)

// RiskLevel is the coarse classification of a risk score.
type RiskLevel string

const (
	RiskLow     RiskLevel = "low"
	RiskMedium  RiskLevel = "medium"
	RiskHigh    RiskLevel = "high"
	RiskExtreme RiskLevel = "extreme"
)

// Impact tells whether a factor lowers (positive) or raises (negative) the risk.
type Impact string

const (
	PositiveImpact Impact = "positive"
	NegativeImpact Impact = "negative"
)

// RiskFactor is a contribution to the risk score.
type RiskFactor struct {
	Name   string  `json:"name"`
	Impact Impact  `json:"impact"`
	Weight float64 `json:"weight"` // Weight is the absolute number of points added or removed.
}

// RiskProfile is the outcome of a risk assessment.
type RiskProfile struct {
	Level   RiskLevel    `json:"level"`
	Score   float64      `json:"score"` // Score is within [0, 100].
	Factors []RiskFactor `json:"factors"`
}

// AssessRisk scores a wallet from its volatility, its concentration (the
// share of the largest position) and the ratio of recently added assets.
//
// The score starts from cfg.Base and each threshold crossed adds or removes
// points. It is clamped to [0, 100] and never fails: NaN inputs count as 0.
func AssessRisk(volatility, concentration, newAssetRatio float64, cfg RiskConfig) RiskProfile {
	volatility, concentration, newAssetRatio = finite(volatility), finite(concentration), finite(newAssetRatio)

	p := RiskProfile{Score: cfg.Base}
	add := func(name string, points float64) {
		impact := NegativeImpact
		if points < 0 {
			impact = PositiveImpact
		}
		p.Score += points
		p.Factors = append(p.Factors, RiskFactor{Name: name, Impact: impact, Weight: math.Abs(points)})
	}

	switch {
	case volatility > cfg.HighVolatility:
		add(fmt.Sprintf("high volatility (%.2f)", volatility), cfg.HighVolatilityImpact)
	case volatility < cfg.LowVolatility:
		add(fmt.Sprintf("low volatility (%.2f)", volatility), -cfg.LowVolatilityImpact)
	}
	switch {
	case concentration > cfg.HighConcentration:
		add(fmt.Sprintf("concentrated holdings (%s in one asset)", PercentOf(concentration)), cfg.HighConcentrationImpact)
	case concentration < cfg.LowConcentration:
		add(fmt.Sprintf("diversified holdings (%s in the largest asset)", PercentOf(concentration)), -cfg.LowConcentrationImpact)
	}
	if newAssetRatio > cfg.HighNewAssets {
		add(fmt.Sprintf("many new assets (%s)", PercentOf(newAssetRatio)), cfg.HighNewAssetsImpact)
	}

	p.Score = min(max(p.Score, 0), 100)
	p.Level = cfg.level(p.Score)
	return p
}

func (cfg RiskConfig) level(score float64) RiskLevel {
	switch {
	case score < cfg.LowBelow:
		return RiskLow
	case score < cfg.MediumBelow:
		return RiskMedium
	case score < cfg.HighBelow:
		return RiskHigh
	default:
		return RiskExtreme
	}
}

// finite replaces NaN by 0. Infinities are kept, they cross every threshold.
func finite(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}
