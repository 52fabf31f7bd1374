package renderer

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/etnz/wallet"
)

const barWidth = 20

// ActivityMarkdown renders the hour and weekday histograms.
func ActivityMarkdown(p wallet.ActivityPattern) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Activity\n\n")
	if p.Total == 0 {
		fmt.Fprint(&b, "No transactions.\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%d transactions, mostly at %02d:00 and on %s.\n\n", p.Total, p.PeakHour, p.PeakDay)

	fmt.Fprint(&b, "## Day of Week\n\n")
	table(&b, "lrl", "Day", "Count", "")
	top := slices.Max(p.DayOfWeek[:])
	for d, count := range p.DayOfWeek {
		row(&b, time.Weekday(d), count, bar(count, top, barWidth))
	}

	fmt.Fprint(&b, "\n## Hour of Day\n\n")
	table(&b, "lrl", "Hour", "Count", "")
	top = slices.Max(p.HourOfDay[:])
	for h, count := range p.HourOfDay {
		if count == 0 {
			continue
		}
		row(&b, fmt.Sprintf("%02d:00", h), count, bar(count, top, barWidth))
	}
	return b.String()
}

// MonthlyMarkdown renders a year of activity month by month.
func MonthlyMarkdown(m wallet.MonthlyBreakdown) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Monthly Activity %d\n\n", m.Year)
	table(&b, "lrrrr", "Month", "Transactions", "Buys", "Sells", "Volume")
	for _, month := range m.Months {
		row(&b, month.Month, month.Count, month.Buys, month.Sells, month.Volume)
	}
	row(&b, "**Total**", m.Total, "", "", "**"+m.TotalVolume.String()+"**")
	fmt.Fprintln(&b)
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "Best month: %s. Average of %.1f transactions per month.\n", m.BestMonth, m.AverageMonthlyActivity)
		return m.Total > 0
	})
	return b.String()
}

// BreakdownMarkdown renders the activity per period.
func BreakdownMarkdown(breakdown []wallet.PeriodActivity, p wallet.Period) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Activity per %s\n\n", p.Name())
	table(&b, "lrr", strings.ToUpper(p.Name()[:1])+p.Name()[1:], "Transactions", "Volume")
	for _, a := range breakdown {
		row(&b, a.ID, a.Count, a.Volume)
	}
	return b.String()
}
