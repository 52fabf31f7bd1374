package wallet

import (
	"fmt"
	"slices"
	"time"
)

// GainKind distinguishes disposals from taxable income.
type GainKind string

const (
	// TradeGain is a gain realized by disposing of a lot.
	TradeGain GainKind = "trade"
	// IncomeGain is an income received in kind (airdrop, staking reward).
	IncomeGain GainKind = "income"
)

// RealizedGainEvent is a gain (or a loss) recognized when a sell consumes a
// lot, or when income is received. A sell spanning several lots produces
// several events.
type RealizedGainEvent struct {
	Kind              GainKind  `json:"kind"`
	Asset             string    `json:"asset"`
	AmountDisposed    Quantity  `json:"amountDisposed"`
	CostBasis         Money     `json:"costBasis"`
	Proceeds          Money     `json:"proceeds"`
	Gain              Money     `json:"gain"` // Proceeds - CostBasis
	HoldingPeriodDays int       `json:"holdingPeriodDays"`
	AcquiredAt        time.Time `json:"acquiredAt"`
	DisposedAt        time.Time `json:"disposedAt"`
}

// Ledger maintains the open lots of a wallet, per asset, and matches
// disposals against them with a cost basis method.
//
// A Ledger is meant for a single computation: feed it chronologically ordered
// transactions with Apply, then read the result. It is not safe for
// concurrent use.
type Ledger struct {
	method    CostBasisMethod
	currency  string
	assets    []string // in order of first appearance
	lots      map[string]lots
	last      map[string]time.Time
	unmatched map[string]Quantity
	cost      map[string]Money
	proceeds  map[string]Money
	events    []RealizedGainEvent
}

// NewLedger creates an empty ledger using the given cost basis method.
func NewLedger(method CostBasisMethod) (*Ledger, error) {
	if !method.valid() {
		return nil, fmt.Errorf("%w: unknown cost basis method %d", ErrInvalidConfiguration, method)
	}
	return &Ledger{
		method:    method,
		lots:      make(map[string]lots),
		last:      make(map[string]time.Time),
		unmatched: make(map[string]Quantity),
		cost:      make(map[string]Money),
		proceeds:  make(map[string]Money),
	}, nil
}

// Method returns the cost basis method of the ledger.
func (l *Ledger) Method() CostBasisMethod { return l.method }

// Currency returns the currency of all prices seen so far, "" if none was set.
func (l *Ledger) Currency() string { return l.currency }

// Assets returns the assets seen by the ledger in order of first appearance.
func (l *Ledger) Assets() []string { return slices.Clone(l.assets) }

// Lots returns a copy of the open lots of an asset, in acquisition order.
func (l *Ledger) Lots(asset string) []Lot { return slices.Clone(l.lots[asset]) }

// Holding returns the amount of an asset held in open lots.
func (l *Ledger) Holding(asset string) Quantity { return l.lots[asset].holding() }

// Unmatched returns the amount of an asset sold without any lot to match.
func (l *Ledger) Unmatched(asset string) Quantity { return l.unmatched[asset] }

// Events returns a copy of all realized gain events, in the order they occurred.
func (l *Ledger) Events() []RealizedGainEvent { return slices.Clone(l.events) }

// Apply records a transaction. Transactions of a given asset must be applied
// in chronological order.
//
// On error the ledger is left unchanged.
func (l *Ledger) Apply(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if last, seen := l.last[tx.Asset]; seen && tx.Timestamp.Before(last) {
		return fmt.Errorf("%w: %s %s on %s is before the previous %s transaction on %s",
			ErrInvalidInput, tx.Type, tx.Asset, tx.Timestamp.Format(time.RFC3339), tx.Asset, last.Format(time.RFC3339))
	}
	if c := tx.Price.Currency(); c != "" {
		if l.currency != "" && l.currency != c {
			return fmt.Errorf("%w: %s %s is priced in %s, the ledger in %s", ErrInvalidInput, tx.Type, tx.Asset, c, l.currency)
		}
		l.currency = c
	}

	if _, seen := l.last[tx.Asset]; !seen {
		l.assets = append(l.assets, tx.Asset)
		l.cost[tx.Asset] = M(0, l.currency)
		l.proceeds[tx.Asset] = M(0, l.currency)
	}
	l.last[tx.Asset] = tx.Timestamp

	switch tx.Type {
	case TxBuy:
		l.cost[tx.Asset] = l.cost[tx.Asset].Add(tx.Value())
		l.acquire(tx)
	case TxIncome:
		l.acquire(tx)
		l.events = append(l.events, RealizedGainEvent{
			Kind:           IncomeGain,
			Asset:          tx.Asset,
			AmountDisposed: Q(0),
			CostBasis:      M(0, l.currency),
			Proceeds:       tx.Value(),
			Gain:           tx.Value(),
			AcquiredAt:     tx.Timestamp,
			DisposedAt:     tx.Timestamp,
		})
	case TxSell:
		l.proceeds[tx.Asset] = l.proceeds[tx.Asset].Add(tx.Value())
		l.sell(tx)
	case TxTransfer:
		// moving assets between addresses neither opens nor closes a lot.
	}
	return nil
}

func (l *Ledger) acquire(tx Transaction) {
	if !tx.Amount.IsPositive() {
		return
	}
	lot := Lot{Asset: tx.Asset, Amount: tx.Amount, UnitCost: tx.Price, AcquiredAt: tx.Timestamp}
	if l.method == AverageCost {
		l.lots[tx.Asset] = l.lots[tx.Asset].pool(lot)
		return
	}
	l.lots[tx.Asset] = append(l.lots[tx.Asset], lot)
}

func (l *Ledger) sell(tx Transaction) {
	open := l.lots[tx.Asset]

	var order []int
	switch l.method {
	case FIFO, AverageCost: // the average pool is a single lot.
		order = open.fifo()
	case LIFO:
		order = open.lifo()
	case HIFO:
		order = open.hifo()
	}

	fragments, remaining, unmatched := open.dispose(tx.Amount, order)
	l.lots[tx.Asset] = remaining
	if unmatched.IsPositive() {
		l.unmatched[tx.Asset] = l.unmatched[tx.Asset].Add(unmatched)
	}

	for _, f := range fragments {
		costBasis := f.Cost()
		proceeds := tx.Price.Mul(f.Amount)
		l.events = append(l.events, RealizedGainEvent{
			Kind:              TradeGain,
			Asset:             tx.Asset,
			AmountDisposed:    f.Amount,
			CostBasis:         costBasis,
			Proceeds:          proceeds,
			Gain:              proceeds.Sub(costBasis),
			HoldingPeriodDays: holdingDays(f.AcquiredAt, tx.Timestamp),
			AcquiredAt:        f.AcquiredAt,
			DisposedAt:        tx.Timestamp,
		})
	}
}

// CostBasisResult is the outcome of matching a transaction history.
type CostBasisResult struct {
	Asset          string              `json:"asset"` // Asset is empty when the result spans several assets.
	Method         CostBasisMethod     `json:"method"`
	TotalCost      Money               `json:"totalCost"`      // TotalCost of all buys.
	TotalProceeds  Money               `json:"totalProceeds"`  // TotalProceeds of all sells, matched or not.
	RealizedGain   Money               `json:"realizedGain"`   // RealizedGain is the sum of trade events gains.
	UnrealizedGain Money               `json:"unrealizedGain"` // UnrealizedGain of the residual lots at the current price.
	Events         []RealizedGainEvent `json:"events"`
	Lots           []Lot               `json:"lots"`      // Lots is the residual set of open lots.
	Unmatched      Quantity            `json:"unmatched"` // Unmatched is the amount sold in excess of the open lots.
}

// Holding returns the total amount held in the residual lots.
func (r *CostBasisResult) Holding() Quantity { return lots(r.Lots).holding() }

// result builds the cost basis result restricted to the given assets.
// prices returns the current price of an asset.
func (l *Ledger) result(assets []string, prices func(asset string) (Money, bool)) (*CostBasisResult, error) {
	r := &CostBasisResult{
		Method:         l.method,
		TotalCost:      M(0, l.currency),
		TotalProceeds:  M(0, l.currency),
		RealizedGain:   M(0, l.currency),
		UnrealizedGain: M(0, l.currency),
	}
	for _, asset := range assets {
		r.TotalCost = r.TotalCost.Add(l.cost[asset])
		r.TotalProceeds = r.TotalProceeds.Add(l.proceeds[asset])
		r.Unmatched = r.Unmatched.Add(l.unmatched[asset])

		open := l.lots[asset]
		if len(open) > 0 {
			price, ok := prices(asset)
			if !ok {
				return nil, fmt.Errorf("%w: no current price for %s", ErrInvalidInput, asset)
			}
			if !price.Compatible(M(0, l.currency)) {
				return nil, fmt.Errorf("%w: price of %s is in %s, the ledger in %s", ErrInvalidInput, asset, price.Currency(), l.currency)
			}
			value := price.Mul(open.holding())
			r.UnrealizedGain = r.UnrealizedGain.Add(value.Sub(open.cost(l.currency)))
			r.Lots = append(r.Lots, open...)
		}
	}
	for _, e := range l.events {
		if !slices.Contains(assets, e.Asset) {
			continue
		}
		r.Events = append(r.Events, e)
		if e.Kind == TradeGain {
			r.RealizedGain = r.RealizedGain.Add(e.Gain)
		}
	}
	return r, nil
}

// Result returns the cost basis result of a single asset valued at price.
func (l *Ledger) Result(asset string, price Money) (*CostBasisResult, error) {
	r, err := l.result([]string{asset}, func(string) (Money, bool) { return price, true })
	if err != nil {
		return nil, err
	}
	r.Asset = asset
	return r, nil
}

// ComputeCostBasis matches the disposals of a chronologically ordered
// transaction history against its acquisitions and returns the realized
// gains and the unrealized gain of the residual lots valued at currentPrice.
//
// currentPrice applies to every asset, so txs is typically the history of a
// single asset. See ComputeAllCostBasis for a multi-asset history.
func ComputeCostBasis(txs []Transaction, currentPrice Money, method CostBasisMethod) (*CostBasisResult, error) {
	ledger, err := replay(txs, method)
	if err != nil {
		return nil, err
	}
	return ledger.result(ledger.assets, func(string) (Money, bool) { return currentPrice, true })
}

// ComputeAllCostBasis is like ComputeCostBasis for a multi-asset history. It
// returns one result per asset in order of first appearance. prices must
// contain a price for every asset still held.
func ComputeAllCostBasis(txs []Transaction, prices map[string]Money, method CostBasisMethod) ([]*CostBasisResult, error) {
	ledger, err := replay(txs, method)
	if err != nil {
		return nil, err
	}
	results := make([]*CostBasisResult, 0, len(ledger.assets))
	for _, asset := range ledger.assets {
		r, err := ledger.result([]string{asset}, func(a string) (Money, bool) {
			p, ok := prices[a]
			return p, ok
		})
		if err != nil {
			return nil, err
		}
		r.Asset = asset
		results = append(results, r)
	}
	return results, nil
}

// replay applies all transactions to a new ledger.
func replay(txs []Transaction, method CostBasisMethod) (*Ledger, error) {
	ledger, err := NewLedger(method)
	if err != nil {
		return nil, err
	}
	for i, tx := range txs {
		if err := ledger.Apply(tx); err != nil {
			return nil, fmt.Errorf("transaction #%d: %w", i+1, err)
		}
	}
	return ledger, nil
}
