package wallet

import (
	"testing"
	"time"
)

func TestDetectAnomalies(t *testing.T) {
	cfg := DefaultConfig().Anomaly
	known := map[string]struct{}{"ETH": {}}
	avg := USD(100)

	tests := []struct {
		name string
		txs  []Transaction
		want []AnomalyKind
		sev  []Severity
	}{
		{
			name: "two transactions two minutes apart",
			txs: []Transaction{
				NewBuy(t0, "ETH", Q(1), USD(100)),
				NewBuy(t0.Add(2*time.Minute), "ETH", Q(1), USD(300)),
			},
			want: []AnomalyKind{TimingAnomaly},
			sev:  []Severity{SeverityMedium},
		},
		{
			name: "fast but small",
			txs: []Transaction{
				NewBuy(t0, "ETH", Q(1), USD(100)),
				NewBuy(t0.Add(time.Minute), "ETH", Q(1), USD(150)),
			},
		},
		{
			name: "large but slow",
			txs: []Transaction{
				NewBuy(t0, "ETH", Q(1), USD(100)),
				NewBuy(t0.Add(time.Hour), "ETH", Q(1), USD(300)),
			},
		},
		{
			name: "medium volume",
			txs:  []Transaction{NewSell(t0, "ETH", Q(20), USD(100))},
			want: []AnomalyKind{VolumeAnomaly},
			sev:  []Severity{SeverityMedium},
		},
		{
			name: "high volume right after another one, on a new asset",
			txs: []Transaction{
				NewBuy(t0, "ETH", Q(1), USD(100)),
				NewBuy(t0.Add(time.Minute), "PEPE", Q(1_000_000), USD(0.01)),
			},
			want: []AnomalyKind{VolumeAnomaly, TimingAnomaly, UnfamiliarAnomaly},
			sev:  []Severity{SeverityHigh, SeverityMedium, SeverityLow},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectAnomalies(tc.txs, avg, known, cfg)
			if len(got) != len(tc.want) {
				t.Fatalf("DetectAnomalies() = %v, want %v", got, tc.want)
			}
			for i, a := range got {
				if a.Kind != tc.want[i] || a.Severity != tc.sev[i] {
					t.Errorf("DetectAnomalies()[%d] = %s/%s, want %s/%s", i, a.Kind, a.Severity, tc.want[i], tc.sev[i])
				}
				if a.Description == "" {
					t.Errorf("DetectAnomalies()[%d] has no description", i)
				}
			}
		})
	}
}

func TestDetectAnomalies_NoAverage(t *testing.T) {
	txs := []Transaction{
		NewBuy(t0, "ETH", Q(1), USD(100)),
		NewBuy(t0.Add(time.Second), "ETH", Q(1000), USD(100)),
	}
	got := DetectAnomalies(txs, USD(0), map[string]struct{}{"ETH": {}}, DefaultConfig().Anomaly)
	if len(got) != 0 {
		t.Errorf("DetectAnomalies() with a zero average = %v, want none", got)
	}
}
