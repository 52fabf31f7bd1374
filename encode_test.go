package wallet

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDecodeTransactions(t *testing.T) {
	jsonlStream := `
{"type":"buy","asset":"ETH","amount":1.5,"price":2000,"currency":"USD","time":"2024-01-02T10:00:00Z"}

{"type":"sell","asset":"ETH","amount":0.5,"price":2500.25,"currency":"USD","time":"2024-02-01T08:30:00+01:00"}
{"type":"transfer","asset":"ETH","amount":1,"price":0,"currency":"USD","time":"2024-3-1","counterpart":"0xcold"}
{"type":"income","asset":"UNI","amount":10,"price":6,"currency":"USD","time":"2024-04-01T00:00:00Z"}
`
	txs, err := DecodeTransactions(strings.NewReader(jsonlStream))
	if err != nil {
		t.Fatalf("DecodeTransactions() returned an unexpected error: %v", err)
	}
	if len(txs) != 4 {
		t.Fatalf("DecodeTransactions() decoded %d transactions, want 4", len(txs))
	}

	wantTypes := []TxType{TxBuy, TxSell, TxTransfer, TxIncome}
	for i, tx := range txs {
		if tx.Type != wantTypes[i] {
			t.Errorf("Transaction %d has type %q, want %q", i+1, tx.Type, wantTypes[i])
		}
	}
	if !txs[1].Price.Equal(USD(2500.25)) {
		t.Errorf("Transaction 2 price = %v, want %v", txs[1].Price, USD(2500.25))
	}
	if want := time.Date(2024, 2, 1, 7, 30, 0, 0, time.UTC); !txs[1].Timestamp.Equal(want) {
		t.Errorf("Transaction 2 time = %v, want %v", txs[1].Timestamp, want)
	}
	if want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC); !txs[2].Timestamp.Equal(want) || txs[2].Counterpart != "0xcold" {
		t.Errorf("Transaction 3 = %+v, want on %v to 0xcold", txs[2], want)
	}
}

func TestDecodeTransactions_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed json", `{"type":"buy",`},
		{"bad time", `{"type":"buy","asset":"ETH","amount":1,"price":1,"time":"yesterday"}`},
		{"negative amount", `{"type":"buy","asset":"ETH","amount":-1,"price":1,"time":"2024-01-01"}`},
		{"unknown type", `{"type":"stake","asset":"ETH","amount":1,"price":1,"time":"2024-01-01"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeTransactions(strings.NewReader(tc.input))
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("DecodeTransactions() error = %v, want %v", err, ErrInvalidInput)
			}
		})
	}
}

func TestEncodeTransactions(t *testing.T) {
	txs := []Transaction{
		NewBuy(day(0), "ETH", Q(1.5), USD(2000)),
		NewTransfer(day(1), "ETH", Q(1), USD(2100), "0xcold"),
		NewIncome(day(2), "UNI", Q(10), USD(6.5)),
	}
	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, txs); err != nil {
		t.Fatalf("EncodeTransactions() error = %v", err)
	}

	want := `{"type":"buy","asset":"ETH","amount":"1.5","price":"2000","currency":"USD","time":"2024-01-01T10:00:00Z"}
{"type":"transfer","asset":"ETH","amount":"1","price":"2100","currency":"USD","time":"2024-01-02T10:00:00Z","counterpart":"0xcold"}
{"type":"income","asset":"UNI","amount":"10","price":"6.5","currency":"USD","time":"2024-01-03T10:00:00Z"}
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeTransactions() =\n%s\nwant\n%s", got, want)
	}

	decoded, err := DecodeTransactions(&buf)
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	for i := range txs {
		if decoded[i].Type != txs[i].Type || !decoded[i].Amount.Equal(txs[i].Amount) || !decoded[i].Price.Equal(txs[i].Price) || !decoded[i].Timestamp.Equal(txs[i].Timestamp) {
			t.Errorf("round trip of %v gave %v", txs[i], decoded[i])
		}
	}
}

func TestDecodeWalletInput(t *testing.T) {
	input := `{
  "address": "0xab",
  "currency": "USD",
  "prices": {"ETH": 2500, "UNI": 6.2},
  "history": [1000, 1100],
  "knownAssets": ["ETH"],
  "defiInteractions": 12,
  "nftCount": 3,
  "asOf": "2024-12-31",
  "transactions": [{"type":"buy","asset":"ETH","amount":1,"price":2000,"currency":"USD","time":"2024-01-02T10:00:00Z"}]
}`
	got, err := DecodeWalletInput(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeWalletInput() error = %v", err)
	}
	if got.Address != "0xab" || got.DeFiInteractions != 12 || got.NFTCount != 3 || len(got.History) != 2 || len(got.KnownAssets) != 1 {
		t.Errorf("DecodeWalletInput() = %+v", got)
	}
	if !got.Prices["UNI"].Equal(USD(6.2)) {
		t.Errorf("DecodeWalletInput().Prices[UNI] = %v, want %v", got.Prices["UNI"], USD(6.2))
	}
	if want := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC); !got.AsOf.Equal(want) {
		t.Errorf("DecodeWalletInput().AsOf = %v, want %v", got.AsOf, want)
	}
	if len(got.Transactions) != 1 {
		t.Errorf("DecodeWalletInput().Transactions = %v, want 1", got.Transactions)
	}

	for _, bad := range []string{`{"adress":"typo"}`, `{"prices":{"ETH":-1}}`, `{"asOf":"soon"}`} {
		if _, err := DecodeWalletInput(strings.NewReader(bad)); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("DecodeWalletInput(%s) error = %v, want %v", bad, err, ErrInvalidInput)
		}
	}
}
