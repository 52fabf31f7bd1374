package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/wallet"
)

// TaxMarkdown renders a tax estimate.
func TaxMarkdown(r wallet.TaxReport, threshold int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Tax Estimate (%s)\n\n", r.Jurisdiction)
	table(&b, "lr", "Bucket", "Amount")
	row(&b, fmt.Sprintf("Short term gains (< %d days)", threshold), r.ShortTermGains.SignedString())
	row(&b, "Long term gains", r.LongTermGains.SignedString())
	row(&b, "Taxable income", r.TaxableIncome.SignedString())
	row(&b, "**Estimated tax**", "**"+r.EstimatedTax.String()+"**")
	fmt.Fprint(&b, "\n*Estimate from a flat rate table, not tax advice. Loss carry-forward, deduction limits and wash-sale rules are ignored.*\n")
	return b.String()
}
