package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/wallet"
)

// CostBasisMarkdown renders the gains of each asset, and the total.
func CostBasisMarkdown(results []*wallet.CostBasisResult, method wallet.CostBasisMethod) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Cost Basis\n\n")
	renderCostBasis(&b, results, method)
	ConditionalBlock(&b, func(w io.Writer) bool { return renderLots(w, results) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderUnmatched(w, results) })
	return b.String()
}

func renderCostBasis(w io.Writer, results []*wallet.CostBasisResult, method wallet.CostBasisMethod) {
	fmt.Fprintf(w, "Method: %s\n\n", method)
	table(w, "lrrrrr", "Asset", "Holding", "Cost", "Proceeds", "Realized", "Unrealized")

	var currency string
	for _, r := range results {
		if c := r.TotalCost.Currency(); c != "" {
			currency = c
		}
	}
	cost, proceeds, realized, unrealized := wallet.M(0, currency), wallet.M(0, currency), wallet.M(0, currency), wallet.M(0, currency)
	for _, r := range results {
		row(w, r.Asset, r.Holding(), r.TotalCost, r.TotalProceeds, r.RealizedGain.SignedString(), r.UnrealizedGain.SignedString())
		cost = cost.Add(r.TotalCost)
		proceeds = proceeds.Add(r.TotalProceeds)
		realized = realized.Add(r.RealizedGain)
		unrealized = unrealized.Add(r.UnrealizedGain)
	}
	row(w, "**Total**", "", "**"+cost.String()+"**", "**"+proceeds.String()+"**", "**"+realized.SignedString()+"**", "**"+unrealized.SignedString()+"**")
	fmt.Fprintln(w)
}

func renderLots(w io.Writer, results []*wallet.CostBasisResult) bool {
	fmt.Fprint(w, "## Open Lots\n\n")
	table(w, "llrrr", "Asset", "Acquired", "Amount", "Unit Cost", "Cost")
	var found bool
	for _, r := range results {
		for _, lot := range r.Lots {
			row(w, lot.Asset, lot.AcquiredAt.Format("2006-01-02"), lot.Amount, lot.UnitCost, lot.Cost())
			found = true
		}
	}
	fmt.Fprintln(w)
	return found
}

func renderUnmatched(w io.Writer, results []*wallet.CostBasisResult) bool {
	fmt.Fprint(w, "## Unmatched Sells\n\n")
	fmt.Fprint(w, "These amounts were sold without any open lot to match, no gain was computed for them.\n\n")
	var found bool
	for _, r := range results {
		if r.Unmatched.IsPositive() {
			fmt.Fprintf(w, "- %s: %s\n", r.Asset, r.Unmatched)
			found = true
		}
	}
	fmt.Fprintln(w)
	return found
}

// EventsMarkdown renders the realized gain events, one per line.
func EventsMarkdown(events []wallet.RealizedGainEvent) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Realized Gains\n\n")
	if len(events) == 0 {
		fmt.Fprint(&b, "No realized gains.\n")
		return b.String()
	}
	table(&b, "lllrrrrr", "Date", "Kind", "Asset", "Amount", "Cost Basis", "Proceeds", "Gain", "Days")
	for _, e := range events {
		row(&b, e.DisposedAt.Format("2006-01-02"), e.Kind, e.Asset, e.AmountDisposed, e.CostBasis, e.Proceeds, e.Gain.SignedString(), e.HoldingPeriodDays)
	}
	return b.String()
}
