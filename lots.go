package wallet

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Lot represents a single acquisition of an asset, used for cost basis calculations.
type Lot struct {
	Asset      string    `json:"asset"`
	Amount     Quantity  `json:"amount"`
	UnitCost   Money     `json:"unitCost"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

// Cost returns the total cost of the lot (amount * unit cost).
func (l Lot) Cost() Money { return l.UnitCost.Mul(l.Amount) }

// HoldingDays returns the number of whole days the lot has been held on 'on'.
func (l Lot) HoldingDays(on time.Time) int { return holdingDays(l.AcquiredAt, on) }

func holdingDays(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	return int(to.Sub(from) / (24 * time.Hour))
}

// lots is the open lots of a single asset, in acquisition order.
type lots []Lot

// fifo returns the disposal order oldest first.
func (l lots) fifo() []int {
	order := make([]int, len(l))
	for i := range order {
		order[i] = i
	}
	return order
}

// lifo returns the disposal order newest first.
func (l lots) lifo() []int {
	order := l.fifo()
	slices.Reverse(order)
	return order
}

// hifo returns the disposal order highest unit cost first, oldest first among equals.
func (l lots) hifo() []int {
	order := l.fifo()
	slices.SortStableFunc(order, func(a, b int) int {
		return l[b].UnitCost.Decimal().Cmp(l[a].UnitCost.Decimal())
	})
	return order
}

// dispose consumes up to 'quantity' units from the lots, visiting them in
// 'order'. It returns the consumed fragments (one per lot touched, in visit
// order), the remaining lots in acquisition order without any empty lot,
// and the quantity that could not be matched.
//
// The receiver is left untouched.
func (l lots) dispose(quantity Quantity, order []int) (fragments []Lot, remaining lots, unmatched Quantity) {
	left := slices.Clone(l)
	for _, i := range order {
		if !quantity.IsPositive() {
			break
		}
		take := left[i].Amount.Min(quantity)
		if !take.IsPositive() {
			continue
		}
		fragment := left[i]
		fragment.Amount = take
		fragments = append(fragments, fragment)

		left[i].Amount = left[i].Amount.Sub(take)
		quantity = quantity.Sub(take)
	}
	for _, lot := range left {
		if lot.Amount.IsPositive() {
			remaining = append(remaining, lot)
		}
	}
	return fragments, remaining, quantity
}

// pool merges an acquisition into a single lot at the weighted-average unit
// cost. The acquisition time is the amount-weighted average of both times.
func (l lots) pool(acquired Lot) lots {
	if len(l) == 0 {
		return lots{acquired}
	}
	current := l[0]
	total := current.Amount.Add(acquired.Amount)
	if !total.IsPositive() {
		return lots{acquired}
	}
	cost := current.Cost().Add(acquired.Cost())

	shift := decimal.NewFromInt(int64(acquired.AcquiredAt.Sub(current.AcquiredAt))).
		Mul(acquired.Amount.Decimal()).
		Div(total.Decimal())

	return lots{{
		Asset:      current.Asset,
		Amount:     total,
		UnitCost:   cost.Div(total),
		AcquiredAt: current.AcquiredAt.Add(time.Duration(shift.IntPart())),
	}}
}

// holding returns the total amount held in the lots.
func (l lots) holding() Quantity {
	var q Quantity
	for _, lot := range l {
		q = q.Add(lot.Amount)
	}
	return q
}

// cost returns the total cost of the lots.
func (l lots) cost(currency string) Money {
	total := M(0, currency)
	for _, lot := range l {
		total = total.Add(lot.Cost())
	}
	return total
}
