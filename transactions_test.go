package wallet

import (
	"errors"
	"testing"
)

func TestSortByTime(t *testing.T) {
	txs := []Transaction{
		NewSell(day(2), "ETH", Q(1), USD(1)),
		NewBuy(day(0), "ETH", Q(1), USD(1)),
		NewBuy(day(2), "BTC", Q(1), USD(1)), // same time as the first sell
		NewBuy(day(1), "UNI", Q(1), USD(1)),
	}
	got := SortByTime(txs)

	want := []string{"ETH", "UNI", "ETH", "BTC"}
	for i, tx := range got {
		if tx.Asset != want[i] {
			t.Errorf("SortByTime()[%d].Asset = %s, want %s", i, tx.Asset, want[i])
		}
	}
	if got[2].Type != TxSell {
		t.Errorf("SortByTime() did not keep the order of simultaneous transactions")
	}
	if txs[0].Type != TxSell {
		t.Errorf("SortByTime() modified its input")
	}
}

func TestParseCostBasisMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    CostBasisMethod
		wantErr bool
	}{
		{"fifo", FIFO, false},
		{"LIFO", LIFO, false},
		{" hifo ", HIFO, false},
		{"average", AverageCost, false},
		{"avg", AverageCost, false},
		{"random", 0, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseCostBasisMethod(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("ParseCostBasisMethod(%q) error = %v, want %v", tc.in, err, ErrInvalidConfiguration)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("ParseCostBasisMethod(%q) = %v, %v, want %v", tc.in, got, err, tc.want)
			}
			if s := got.String(); must(ParseCostBasisMethod(s)) != got {
				t.Errorf("ParseCostBasisMethod(%q.String()) does not round trip", s)
			}
		})
	}
}

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{USD(1234.5), "$1,234.50"},
		{M(12.345, ""), "12.35"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("Money.String() = %q, want %q", got, tc.want)
			}
		})
	}
}
