package wallet

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleWallet(address string) WalletInput {
	return WalletInput{
		Address: address,
		Transactions: []Transaction{
			// deliberately out of order, Analyze sorts them.
			NewSell(day(400), "ETH", Q(1), USD(3000)),
			NewBuy(day(0), "ETH", Q(2), USD(1000)),
			NewBuy(day(10), "UNI", Q(100), USD(5)),
			NewIncome(day(20), "UNI", Q(10), USD(6)),
		},
		Prices:           map[string]Money{"ETH": USD(2500), "UNI": USD(7)},
		History:          decimals(1000, 1200, 1100, 1300, 1250, 1400, 1500, 1600),
		KnownAssets:      []string{"ETH"},
		DeFiInteractions: 2,
		AsOf:             time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAnalyze(t *testing.T) {
	r, err := Analyze(sampleWallet("0xabc"), DefaultConfig())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if got, want := len(r.CostBasis), 2; got != want {
		t.Fatalf("Analyze().CostBasis has %d results, want %d", got, want)
	}
	if !r.RealizedGain().Equal(USD(2000)) {
		t.Errorf("Analyze().RealizedGain() = %v, want %v", r.RealizedGain(), USD(2000))
	}
	// ETH 1 × (2500-1000), UNI 100 × (7-5) + 10 × (7-6)
	if !r.UnrealizedGain().Equal(USD(1710)) {
		t.Errorf("Analyze().UnrealizedGain() = %v, want %v", r.UnrealizedGain(), USD(1710))
	}
	// ETH 2500 + UNI 770
	if !r.TotalValue.Equal(USD(3270)) {
		t.Errorf("Analyze().TotalValue = %v, want %v", r.TotalValue, USD(3270))
	}
	if len(r.Positions) != 2 || r.Positions[0].Asset != "ETH" || r.Positions[1].Asset != "UNI" {
		t.Errorf("Analyze().Positions = %v, want ETH and UNI", r.Positions)
	}
	if !r.Tax.LongTermGains.Equal(USD(2000)) || !r.Tax.TaxableIncome.Equal(USD(60)) {
		t.Errorf("Analyze().Tax = %+v", r.Tax)
	}
	if r.Monthly.Year != 2025 {
		t.Errorf("Analyze().Monthly.Year = %d, want 2025", r.Monthly.Year)
	}
	if r.Activity.Total != 4 {
		t.Errorf("Analyze().Activity.Total = %d, want 4", r.Activity.Total)
	}
	if r.NewAssetRatio != 0.5 {
		t.Errorf("Analyze().NewAssetRatio = %v, want 0.5", r.NewAssetRatio)
	}
	// UNI is unfamiliar: two anomalies, one per UNI transaction.
	if len(r.Anomalies) != 2 {
		t.Errorf("Analyze().Anomalies = %v, want 2", r.Anomalies)
	}
	if r.Cluster.Cluster != Holder {
		t.Errorf("Analyze().Cluster = %v, want %v", r.Cluster.Cluster, Holder)
	}
	if got := r.Performance.Percent(); !got.Equal(60) {
		t.Errorf("Analyze().Performance.Percent() = %v, want 60%%", got)
	}
	if r.Prediction.Trend != TrendUp {
		t.Errorf("Analyze().Prediction.Trend = %v, want %v", r.Prediction.Trend, TrendUp)
	}
	if r.Risk.Score < 0 || r.Risk.Score > 100 {
		t.Errorf("Analyze().Risk.Score = %v, want within [0, 100]", r.Risk.Score)
	}
}

func TestAnalyze_Errors(t *testing.T) {
	in := sampleWallet("0xabc")
	delete(in.Prices, "UNI")
	if _, err := Analyze(in, DefaultConfig()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Analyze() without UNI price error = %v, want %v", err, ErrInvalidInput)
	}

	in = sampleWallet("0xabc")
	in.Prices["ETH"] = EUR(2500)
	if _, err := Analyze(in, DefaultConfig()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Analyze() with an EUR price error = %v, want %v", err, ErrInvalidInput)
	}

	// A price for an asset never traded is still checked.
	in = sampleWallet("0xabc")
	in.Prices["BTC"] = EUR(60000)
	if _, err := Analyze(in, DefaultConfig()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Analyze() with an EUR BTC price error = %v, want %v", err, ErrInvalidInput)
	}

	cfg := DefaultConfig()
	cfg.Jurisdiction = "FR"
	if _, err := Analyze(sampleWallet("0xabc"), cfg); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Analyze() in FR error = %v, want %v", err, ErrInvalidInput)
	}

	cfg = DefaultConfig()
	cfg.Method = CostBasisMethod(-1)
	if _, err := Analyze(sampleWallet("0xabc"), cfg); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("Analyze() with an unknown method error = %v, want %v", err, ErrInvalidConfiguration)
	}
}

func TestAnalyzeAll(t *testing.T) {
	var inputs []WalletInput
	for i := range 20 {
		in := sampleWallet(fmt.Sprintf("0x%02d", i))
		in.History = append(in.History, decimal.NewFromInt(int64(1000*i)))
		inputs = append(inputs, in)
	}

	reports, err := AnalyzeAll(context.Background(), inputs, DefaultConfig(), 4)
	if err != nil {
		t.Fatalf("AnalyzeAll() error = %v", err)
	}
	if len(reports) != len(inputs) {
		t.Fatalf("AnalyzeAll() returned %d reports, want %d", len(reports), len(inputs))
	}
	for i, r := range reports {
		want, err := Analyze(inputs[i], DefaultConfig())
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if !reflect.DeepEqual(r, want) {
			t.Errorf("AnalyzeAll()[%d] differs from Analyze()", i)
		}
	}
}

func TestAnalyzeAll_Errors(t *testing.T) {
	bad := sampleWallet("0xbad")
	bad.Transactions = append(bad.Transactions, NewBuy(day(1), "ETH", Q(-1), USD(1)))
	inputs := []WalletInput{sampleWallet("0x01"), bad, sampleWallet("0x02")}

	if _, err := AnalyzeAll(context.Background(), inputs, DefaultConfig(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("AnalyzeAll() error = %v, want %v", err, ErrInvalidInput)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := AnalyzeAll(ctx, inputs[:1], DefaultConfig(), 1); !errors.Is(err, context.Canceled) {
		t.Errorf("AnalyzeAll() on a canceled context error = %v, want %v", err, context.Canceled)
	}
}

func TestAssets(t *testing.T) {
	got := Assets(sampleWallet("0x01"), WalletInput{Transactions: []Transaction{NewBuy(day(0), "BTC", Q(1), USD(1))}})
	if want := []string{"BTC", "ETH", "UNI"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Assets() = %v, want %v", got, want)
	}
}
