package wallet

import (
	"testing"
)

func TestNewPerformance(t *testing.T) {
	tests := []struct {
		name       string
		history    []float64
		wantChange Money
		wantPct    Percent
	}{
		{"empty", nil, M(0, "USD"), 0},
		{"single", []float64{100}, M(0, "USD"), 0},
		{"gain", []float64{100, 90, 150}, M(50, "USD"), 50},
		{"loss", []float64{200, 150}, M(-50, "USD"), -25},
		{"from zero", []float64{0, 150}, M(150, "USD"), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPerformance(decimals(tc.history...), "USD")
			if got := p.Change(); !got.Equal(tc.wantChange) {
				t.Errorf("NewPerformance().Change() = %v, want %v", got, tc.wantChange)
			}
			if got := p.Percent(); !got.Equal(tc.wantPct) {
				t.Errorf("NewPerformance().Percent() = %v, want %v", got, tc.wantPct)
			}
		})
	}
}
