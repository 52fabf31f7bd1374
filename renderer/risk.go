package renderer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/wallet"
)

// RiskMarkdown renders a risk profile.
func RiskMarkdown(p wallet.RiskProfile) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Risk\n\n")
	fmt.Fprintf(&b, "Score: **%.0f/100** (%s)\n\n", p.Score, p.Level)
	if len(p.Factors) == 0 {
		fmt.Fprint(&b, "No risk factor.\n")
		return b.String()
	}
	table(&b, "lr", "Factor", "Points")
	for _, f := range p.Factors {
		sign := "+"
		if f.Impact == wallet.PositiveImpact {
			sign = "-"
		}
		row(&b, f.Name, fmt.Sprintf("%s%.0f", sign, f.Weight))
	}
	return b.String()
}

// AnomaliesMarkdown renders anomalies, most severe first.
func AnomaliesMarkdown(anomalies []wallet.Anomaly) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Anomalies\n\n")
	if len(anomalies) == 0 {
		fmt.Fprint(&b, "No anomaly detected.\n")
		return b.String()
	}
	for _, severity := range []wallet.Severity{wallet.SeverityHigh, wallet.SeverityMedium, wallet.SeverityLow} {
		for _, a := range anomalies {
			if a.Severity != severity {
				continue
			}
			fmt.Fprintf(&b, "- **%s** %s on %s: %s", a.Severity, a.Kind, a.Timestamp.Format("2006-01-02 15:04"), a.Description)
			if len(a.Details) > 0 {
				var details []string
				for _, k := range slices.Sorted(maps.Keys(a.Details)) {
					details = append(details, k+"="+a.Details[k])
				}
				fmt.Fprintf(&b, " (%s)", strings.Join(details, ", "))
			}
			fmt.Fprintln(&b)
		}
	}
	return b.String()
}
