package wallet

import "time"

// ActivityPattern is the distribution of transactions over the clock and the calendar.
type ActivityPattern struct {
	HourOfDay [24]int      `json:"hourOfDay"` // transactions per hour of the day.
	DayOfWeek [7]int       `json:"dayOfWeek"` // transactions per day of the week, Sunday first.
	Monthly   [12]int      `json:"monthly"`   // transactions per month of the year, January first.
	PeakHour  int          `json:"peakHour"`
	PeakDay   time.Weekday `json:"peakDay"`
	Total     int          `json:"total"`
}

// BuildActivityPattern counts transactions per hour of the day, day of the
// week and month of the year, in the given location (UTC if nil).
func BuildActivityPattern(txs []Transaction, loc *time.Location) ActivityPattern {
	loc = location(loc)
	var p ActivityPattern
	for _, tx := range txs {
		t := tx.Timestamp.In(loc)
		p.HourOfDay[t.Hour()]++
		p.DayOfWeek[t.Weekday()]++
		p.Monthly[t.Month()-1]++
		p.Total++
	}
	p.PeakHour = argmax(p.HourOfDay[:])
	p.PeakDay = time.Weekday(argmax(p.DayOfWeek[:]))
	return p
}

// argmax returns the index of the highest value, the lowest index on ties.
func argmax(values []int) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}

// MonthActivity sums the activity of one month.
type MonthActivity struct {
	Month  time.Month `json:"month"`
	Count  int        `json:"count"`
	Buys   int        `json:"buys"`
	Sells  int        `json:"sells"`
	Volume Money      `json:"volume"` // Volume is the total traded value.
}

// MonthlyBreakdown is the activity of a calendar year, month by month.
type MonthlyBreakdown struct {
	Year      int               `json:"year"`
	Months    [12]MonthActivity `json:"months"`
	BestMonth time.Month        `json:"bestMonth"` // BestMonth has the highest volume, the earliest on ties.
	Total     int               `json:"total"`
	// TotalVolume is the traded value over the year.
	TotalVolume Money `json:"totalVolume"`
	// AverageMonthlyActivity is the average number of transactions per month.
	AverageMonthlyActivity float64 `json:"averageMonthlyActivity"`
}

// BuildMonthlyBreakdown aggregates the transactions of a single year, per
// month. Transactions of other years are ignored. Volumes are in the first
// currency of txs: transactions priced in another one are counted, but not
// added to the volumes.
func BuildMonthlyBreakdown(txs []Transaction, year int, loc *time.Location) MonthlyBreakdown {
	loc = location(loc)
	currency := currencyOf(txs)
	b := MonthlyBreakdown{Year: year, TotalVolume: M(0, currency), BestMonth: time.January}
	for i := range b.Months {
		b.Months[i] = MonthActivity{Month: time.Month(i + 1), Volume: M(0, currency)}
	}

	for _, tx := range txs {
		t := tx.Timestamp.In(loc)
		if t.Year() != year {
			continue
		}
		m := &b.Months[t.Month()-1]
		m.Count++
		switch tx.Type {
		case TxBuy:
			m.Buys++
		case TxSell:
			m.Sells++
		}
		b.Total++
		if v := tx.Value(); v.Compatible(b.TotalVolume) {
			m.Volume = m.Volume.Add(v)
			b.TotalVolume = b.TotalVolume.Add(v)
		}
	}

	best := 0
	for i, m := range b.Months {
		if m.Volume.GreaterThan(b.Months[best].Volume) {
			best = i
		}
	}
	b.BestMonth = time.Month(best + 1)
	b.AverageMonthlyActivity = float64(b.Total) / 12
	return b
}

// PeriodActivity sums the activity of one calendar period.
type PeriodActivity struct {
	Range  Range  `json:"range"`
	ID     string `json:"id"` // ID is a short identifier like "2024-Q1".
	Count  int    `json:"count"`
	Volume Money  `json:"volume"`
}

// BuildBreakdown aggregates transactions over each period 'p' overlapping
// the range 'r'. Transactions outside of the periods are ignored. Like in
// BuildMonthlyBreakdown, only transactions in the first currency of txs add
// to the volumes.
func BuildBreakdown(txs []Transaction, r Range, p Period, loc *time.Location) []PeriodActivity {
	currency := currencyOf(txs)
	var breakdown []PeriodActivity
	for period := range r.Periods(p) {
		breakdown = append(breakdown, PeriodActivity{Range: period, ID: period.Identifier(p), Volume: M(0, currency)})
	}
	for _, tx := range txs {
		day := DateOf(tx.Timestamp, loc)
		for i := range breakdown {
			if breakdown[i].Range.Contains(day) {
				breakdown[i].Count++
				if v := tx.Value(); v.Compatible(breakdown[i].Volume) {
					breakdown[i].Volume = breakdown[i].Volume.Add(v)
				}
				break
			}
		}
	}
	return breakdown
}

// currencyOf returns the first price currency found in txs.
func currencyOf(txs []Transaction) string {
	for _, tx := range txs {
		if c := tx.Price.Currency(); c != "" {
			return c
		}
	}
	return ""
}
