package wallet

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// WalletInput is everything known about a wallet, as provided by upstream
// collaborators (transaction history provider, price oracle).
type WalletInput struct {
	Address      string
	Transactions []Transaction
	// Prices are the current unit prices, by asset. Every held asset must
	// have one.
	Prices map[string]Money
	// History is the total value of the wallet over regular periods, oldest
	// first.
	History []decimal.Decimal
	// KnownAssets are the assets the wallet is familiar with.
	KnownAssets      []string
	DeFiInteractions int
	NFTCount         int
	// AsOf is the date of the analysis, the monthly breakdown is computed
	// for its year. Zero means the time of the last transaction.
	AsOf time.Time
}

// Position is the value of an asset held.
type Position struct {
	Asset   string   `json:"asset"`
	Holding Quantity `json:"holding"`
	Price   Money    `json:"price"`
	Value   Money    `json:"value"`
}

// Report gathers every analysis of a wallet.
type Report struct {
	Address    string             `json:"address"`
	AsOf       time.Time          `json:"asOf"`
	Method     CostBasisMethod    `json:"method"`
	Positions  []Position         `json:"positions"`
	TotalValue Money              `json:"totalValue"`
	CostBasis  []*CostBasisResult `json:"costBasis"`
	Tax        TaxReport          `json:"tax"`
	Activity   ActivityPattern    `json:"activity"`
	Monthly    MonthlyBreakdown   `json:"monthly"`

	Volatility    float64     `json:"volatility"`
	Concentration float64     `json:"concentration"`
	NewAssetRatio float64     `json:"newAssetRatio"`
	Risk          RiskProfile `json:"risk"`

	Performance             Performance      `json:"performance"`
	AverageTransactionValue Money            `json:"averageTransactionValue"`
	Anomalies               []Anomaly        `json:"anomalies"`
	Stats                   WalletStats      `json:"stats"`
	Cluster                 ClusterResult    `json:"cluster"`
	Prediction              PredictionResult `json:"prediction"`
}

// RealizedGain returns the realized gain over all assets.
func (r *Report) RealizedGain() Money {
	total := M(0, r.TotalValue.Currency())
	for _, c := range r.CostBasis {
		total = total.Add(c.RealizedGain)
	}
	return total
}

// UnrealizedGain returns the unrealized gain over all assets.
func (r *Report) UnrealizedGain() Money {
	total := M(0, r.TotalValue.Currency())
	for _, c := range r.CostBasis {
		total = total.Add(c.UnrealizedGain)
	}
	return total
}

// Analyze runs every analysis on a wallet.
//
// Transactions are sorted by time before being matched. The analysis is all
// or nothing: any invalid transaction, missing price or price in another
// currency fails it.
func Analyze(in WalletInput, cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	txs := SortByTime(in.Transactions)

	asOf := in.AsOf
	if asOf.IsZero() && len(txs) > 0 {
		asOf = txs[len(txs)-1].Timestamp
	}
	known := make(map[string]struct{}, len(in.KnownAssets))
	for _, a := range in.KnownAssets {
		known[a] = struct{}{}
	}

	currency := currencyOf(txs)
	for asset, price := range in.Prices {
		if !price.Compatible(M(0, currency)) {
			return nil, fmt.Errorf("%w: price of %s is in %s, the transactions in %s", ErrInvalidInput, asset, price.Currency(), currency)
		}
	}

	results, err := ComputeAllCostBasis(txs, in.Prices, cfg.Method)
	if err != nil {
		return nil, err
	}
	var events []RealizedGainEvent
	for _, r := range results {
		events = append(events, r.Events...)
	}
	tax, err := EstimateTax(events, cfg.Jurisdiction, cfg.Tax)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Address:    in.Address,
		AsOf:       asOf,
		Method:     cfg.Method,
		TotalValue: M(0, currency),
		CostBasis:  results,
		Tax:        tax,
		Activity:   BuildActivityPattern(txs, cfg.Location),
		Monthly:    BuildMonthlyBreakdown(txs, asOf.In(location(cfg.Location)).Year(), cfg.Location),
	}

	values := make(map[string]Money)
	for _, c := range results {
		holding := c.Holding()
		if !holding.IsPositive() {
			continue
		}
		price := in.Prices[c.Asset]
		value := price.Mul(holding)
		values[c.Asset] = value
		r.TotalValue = r.TotalValue.Add(value)
		r.Positions = append(r.Positions, Position{Asset: c.Asset, Holding: holding, Price: price, Value: value})
	}

	r.Volatility = Volatility(in.History)
	r.Concentration = Concentration(values)
	r.NewAssetRatio = NewAssetRatio(txs, known)
	r.Risk = AssessRisk(r.Volatility, r.Concentration, r.NewAssetRatio, cfg.Risk)

	r.AverageTransactionValue = AverageTransactionValue(txs)
	r.Anomalies = DetectAnomalies(txs, r.AverageTransactionValue, known, cfg.Anomaly)

	r.Stats = NewWalletStats(txs, r.TotalValue, in.DeFiInteractions, in.NFTCount)
	r.Cluster = ClassifyWallet(r.Stats, cfg.Cluster)
	r.Performance = NewPerformance(in.History, currency)
	r.Prediction = PredictValue(in.History, cfg.PeriodsAhead)
	return r, nil
}

// AnalyzeAll analyzes wallets concurrently, with at most parallelism
// analyses running at once (unlimited if parallelism <= 0).
//
// Reports are returned in the order of inputs. The first error cancels the
// remaining analyses and is returned.
func AnalyzeAll(ctx context.Context, inputs []WalletInput, cfg Config, parallelism int) ([]*Report, error) {
	reports := make([]*Report, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Analyze(in, cfg)
			if err != nil {
				return fmt.Errorf("wallet %q: %w", in.Address, err)
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Assets returns the sorted assets of all the inputs.
func Assets(inputs ...WalletInput) []string {
	set := make(map[string]struct{})
	for _, in := range inputs {
		for _, tx := range in.Transactions {
			set[tx.Asset] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

func location(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}
