package wallet

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Config gathers every tunable of the analytics engine. The engine reads no
// ambient state: all behaviour is driven by a Config value.
//
// Use DefaultConfig and override the fields that matter.
type Config struct {
	Method       CostBasisMethod
	Jurisdiction Jurisdiction
	// Location is used to bucket timestamps into hours, days and months.
	// nil means UTC.
	Location *time.Location
	// PeriodsAhead is how many periods the trend predictor projects.
	PeriodsAhead int

	Tax     TaxConfig
	Risk    RiskConfig
	Anomaly AnomalyConfig
	Cluster ClusterConfig
}

// TaxRates is the flat rate table of a jurisdiction, as ratios (0.15 = 15%).
type TaxRates struct {
	ShortTerm decimal.Decimal
	LongTerm  decimal.Decimal
	Income    decimal.Decimal
}

// TaxConfig configures the tax estimator.
type TaxConfig struct {
	// ShortTermThresholdDays is the holding period, in days, from which a
	// gain is long term.
	ShortTermThresholdDays int
	Rates                  map[Jurisdiction]TaxRates
}

// RiskConfig configures the risk score.
type RiskConfig struct {
	Base float64 // Base score before any factor.

	HighVolatility          float64 // above it, HighVolatilityImpact is added.
	HighVolatilityImpact    float64
	LowVolatility           float64 // below it, LowVolatilityImpact is subtracted.
	LowVolatilityImpact     float64
	HighConcentration       float64
	HighConcentrationImpact float64
	LowConcentration        float64
	LowConcentrationImpact  float64
	HighNewAssets           float64
	HighNewAssetsImpact     float64

	// Level upper bounds: score < LowBelow is low, < MediumBelow medium,
	// < HighBelow high, else extreme.
	LowBelow    float64
	MediumBelow float64
	HighBelow   float64
}

// AnomalyConfig configures the anomaly detector.
type AnomalyConfig struct {
	VolumeMultiplier     decimal.Decimal // value above avg × it is a volume anomaly.
	HighVolumeMultiplier decimal.Decimal // value above avg × it is a high severity one.
	TimingWindow         time.Duration   // minimum gap between two transactions.
	TimingMultiplier     decimal.Decimal // value above avg × it in the window is a timing anomaly.
}

// ClusterConfig configures the behaviour classifier rules.
type ClusterConfig struct {
	WhaleValue           decimal.Decimal
	TraderMinTxs         int
	TraderMaxDaysBetween float64
	DeFiMinInteractions  int
	NFTMinCount          int
	HolderMaxTxs         int
	HolderMinDaysBetween float64
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Method:       FIFO,
		Jurisdiction: US,
		Location:     time.UTC,
		PeriodsAhead: 30,
		Tax: TaxConfig{
			ShortTermThresholdDays: 365,
			Rates: map[Jurisdiction]TaxRates{
				US: {ShortTerm: decimal.RequireFromString("0.24"), LongTerm: decimal.RequireFromString("0.15"), Income: decimal.RequireFromString("0.24")},
				UK: {ShortTerm: decimal.RequireFromString("0.20"), LongTerm: decimal.RequireFromString("0.20"), Income: decimal.RequireFromString("0.20")},
				EU: {ShortTerm: decimal.RequireFromString("0.25"), LongTerm: decimal.RequireFromString("0.10"), Income: decimal.RequireFromString("0.25")},
			},
		},
		Risk: RiskConfig{
			Base:                    50,
			HighVolatility:          0.5,
			HighVolatilityImpact:    20,
			LowVolatility:           0.2,
			LowVolatilityImpact:     10,
			HighConcentration:       0.7,
			HighConcentrationImpact: 15,
			LowConcentration:        0.3,
			LowConcentrationImpact:  10,
			HighNewAssets:           0.5,
			HighNewAssetsImpact:     15,
			LowBelow:                30,
			MediumBelow:             55,
			HighBelow:               75,
		},
		Anomaly: AnomalyConfig{
			VolumeMultiplier:     decimal.NewFromInt(10),
			HighVolumeMultiplier: decimal.NewFromInt(50),
			TimingWindow:         5 * time.Minute,
			TimingMultiplier:     decimal.NewFromInt(2),
		},
		Cluster: ClusterConfig{
			WhaleValue:           decimal.NewFromInt(1_000_000),
			TraderMinTxs:         500,
			TraderMaxDaysBetween: 2,
			DeFiMinInteractions:  50,
			NFTMinCount:          20,
			HolderMaxTxs:         50,
			HolderMinDaysBetween: 30,
		},
	}
}

// Validate checks the configuration for unsupported values.
func (c Config) Validate() error {
	if !c.Method.valid() {
		return fmt.Errorf("%w: unknown cost basis method %d", ErrInvalidConfiguration, c.Method)
	}
	if _, err := ParseJurisdiction(string(c.Jurisdiction)); err != nil {
		return err
	}
	if _, ok := c.Tax.Rates[c.Jurisdiction]; !ok {
		return fmt.Errorf("%w: no tax rates for %s", ErrInvalidConfiguration, c.Jurisdiction)
	}
	if c.Tax.ShortTermThresholdDays < 0 {
		return fmt.Errorf("%w: negative short term threshold %d", ErrInvalidConfiguration, c.Tax.ShortTermThresholdDays)
	}
	if c.PeriodsAhead < 0 {
		return fmt.Errorf("%w: negative periods ahead %d", ErrInvalidConfiguration, c.PeriodsAhead)
	}
	return nil
}
