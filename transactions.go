package wallet

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

// TxType is a typed string identifying the kind of a transaction.
type TxType string

// Transaction types.
const (
	TxBuy      TxType = "buy"
	TxSell     TxType = "sell"
	TxTransfer TxType = "transfer"
	// TxIncome is a taxable acquisition that was not paid for: airdrops,
	// staking or mining rewards.
	TxIncome TxType = "income"
)

func (t TxType) valid() bool {
	switch t {
	case TxBuy, TxSell, TxTransfer, TxIncome:
		return true
	}
	return false
}

// Transaction is an observed transfer or trade of a wallet.
//
// Transactions are values: the engine never modifies the records it is given.
type Transaction struct {
	Type        TxType    // Type is the kind of transaction.
	Asset       string    // Asset identifies the token (symbol or contract address).
	Amount      Quantity  // Amount of units, never negative.
	Price       Money     // Price is the unit price at execution.
	Timestamp   time.Time // Timestamp of the execution.
	Counterpart string    // Counterpart is the optional counterpart asset or address.
}

// NewBuy creates a buy transaction.
func NewBuy(on time.Time, asset string, amount Quantity, price Money) Transaction {
	return Transaction{Type: TxBuy, Asset: asset, Amount: amount, Price: price, Timestamp: on}
}

// NewSell creates a sell transaction.
func NewSell(on time.Time, asset string, amount Quantity, price Money) Transaction {
	return Transaction{Type: TxSell, Asset: asset, Amount: amount, Price: price, Timestamp: on}
}

// NewTransfer creates a transfer transaction.
func NewTransfer(on time.Time, asset string, amount Quantity, price Money, counterpart string) Transaction {
	return Transaction{Type: TxTransfer, Asset: asset, Amount: amount, Price: price, Timestamp: on, Counterpart: counterpart}
}

// NewIncome creates an income transaction valued at its fair market price.
func NewIncome(on time.Time, asset string, amount Quantity, price Money) Transaction {
	return Transaction{Type: TxIncome, Asset: asset, Amount: amount, Price: price, Timestamp: on}
}

// Value returns the value of the transaction at its execution price.
func (t Transaction) Value() Money { return t.Price.Mul(t.Amount) }

// Validate checks the transaction fields on their own, without any context.
func (t Transaction) Validate() error {
	if !t.Type.valid() {
		return fmt.Errorf("%w: unknown transaction type %q", ErrInvalidInput, t.Type)
	}
	if t.Asset == "" {
		return fmt.Errorf("%w: %s transaction on %s has no asset", ErrInvalidInput, t.Type, t.Timestamp.Format(time.RFC3339))
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("%w: %s %s amount must not be negative, got %s", ErrInvalidInput, t.Type, t.Asset, t.Amount)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("%w: %s %s price must not be negative, got %s", ErrInvalidInput, t.Type, t.Asset, t.Price)
	}
	if t.Timestamp.IsZero() {
		return fmt.Errorf("%w: %s %s has no timestamp", ErrInvalidInput, t.Type, t.Asset)
	}
	return nil
}

// SortByTime returns a chronologically sorted copy of txs. Transactions with
// the same timestamp keep their relative order.
func SortByTime(txs []Transaction) []Transaction {
	sorted := slices.Clone(txs)
	slices.SortStableFunc(sorted, func(a, b Transaction) int { return a.Timestamp.Compare(b.Timestamp) })
	return sorted
}

// jsonTransaction is the persisted form of a Transaction, one per JSONL line.
type jsonTransaction struct {
	Type        TxType   `json:"type"`
	Asset       string   `json:"asset"`
	Amount      Quantity `json:"amount"`
	Price       Quantity `json:"price"`
	Currency    string   `json:"currency,omitempty"`
	Time        string   `json:"time"`
	Counterpart string   `json:"counterpart,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonTransaction{
		Type:        t.Type,
		Asset:       t.Asset,
		Amount:      t.Amount,
		Price:       Q(t.Price.Decimal()),
		Currency:    t.Price.Currency(),
		Time:        t.Timestamp.Format(time.RFC3339),
		Counterpart: t.Counterpart,
	})
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It handles the flat structure where price and currency are separate fields.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var j jsonTransaction
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	on, err := time.Parse(time.RFC3339, j.Time)
	if err != nil {
		// also accept plain dates, read at midnight UTC.
		var derr error
		if on, derr = time.Parse(readDateFormat, j.Time); derr != nil {
			return fmt.Errorf("invalid time %q, want RFC3339: %w", j.Time, err)
		}
	}
	*t = Transaction{
		Type:        j.Type,
		Asset:       j.Asset,
		Amount:      j.Amount,
		Price:       M(j.Price.Decimal(), j.Currency),
		Timestamp:   on,
		Counterpart: j.Counterpart,
	}
	return nil
}
