package wallet

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The transaction history of a wallet is persisted as JSONL, one transaction
// per line, so that it stays human-readable and diff friendly:
//
//	{"type":"buy","asset":"ETH","amount":1.5,"price":2000,"currency":"USD","time":"2024-01-02T10:00:00Z"}
//
// The wallet description is a single JSON object, see DecodeWalletInput.

// DecodeTransactions reads a JSONL transaction stream. Empty lines are
// skipped. Transactions are validated but not sorted.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal([]byte(text), &tx); err != nil {
			return nil, fmt.Errorf("%w: format error on line %d %q: %v", ErrInvalidInput, line, text, err)
		}
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read transactions: %w", err)
	}
	return txs, nil
}

// EncodeTransaction writes a transaction as a single JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// EncodeTransactions writes transactions as JSONL.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// jsonWallet is the persisted form of a WalletInput.
//
// Prices share a single currency, and asOf accepts either a date or a
// RFC3339 time.
type jsonWallet struct {
	Address          string                     `json:"address"`
	Currency         string                     `json:"currency"`
	Prices           map[string]decimal.Decimal `json:"prices"`
	History          []decimal.Decimal          `json:"history"`
	KnownAssets      []string                   `json:"knownAssets"`
	DeFiInteractions int                        `json:"defiInteractions"`
	NFTCount         int                        `json:"nftCount"`
	AsOf             string                     `json:"asOf,omitempty"`
	Transactions     []Transaction              `json:"transactions,omitempty"`
}

// DecodeWalletInput reads a wallet description:
//
//	{
//	  "address": "0xab…",
//	  "currency": "USD",
//	  "prices": {"ETH": 2500, "UNI": 6.2},
//	  "history": [1000, 1100, 1050],
//	  "knownAssets": ["ETH"],
//	  "defiInteractions": 12,
//	  "nftCount": 3,
//	  "asOf": "2024-12-31",
//	  "transactions": [ … ]
//	}
//
// Transactions are optional, they are usually read from a separate JSONL file.
func DecodeWalletInput(r io.Reader) (WalletInput, error) {
	var j jsonWallet
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&j); err != nil {
		return WalletInput{}, fmt.Errorf("%w: invalid wallet: %v", ErrInvalidInput, err)
	}

	in := WalletInput{
		Address:          j.Address,
		Prices:           make(map[string]Money, len(j.Prices)),
		History:          j.History,
		KnownAssets:      j.KnownAssets,
		DeFiInteractions: j.DeFiInteractions,
		NFTCount:         j.NFTCount,
		Transactions:     j.Transactions,
	}
	for asset, price := range j.Prices {
		if price.IsNegative() {
			return WalletInput{}, fmt.Errorf("%w: negative price %s for %s", ErrInvalidInput, price, asset)
		}
		in.Prices[asset] = M(price, j.Currency)
	}
	if j.AsOf != "" {
		on, err := time.Parse(time.RFC3339, j.AsOf)
		if err != nil {
			var derr error
			if on, derr = time.Parse(readDateFormat, j.AsOf); derr != nil {
				return WalletInput{}, fmt.Errorf("%w: invalid asOf %q: %v", ErrInvalidInput, j.AsOf, err)
			}
		}
		in.AsOf = on
	}
	return in, nil
}
