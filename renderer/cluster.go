package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/wallet"
)

// ClusterMarkdown renders the behavioural cluster of a wallet.
func ClusterMarkdown(c wallet.ClusterResult) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Behaviour\n\n")
	fmt.Fprintf(&b, "Cluster: **%s** (confidence %s)\n\n", c.Cluster, wallet.PercentOf(c.Confidence))
	for _, s := range c.Characteristics {
		fmt.Fprintf(&b, "- %s\n", s)
	}
	return b.String()
}

// PredictionMarkdown renders a value projection.
func PredictionMarkdown(p wallet.PredictionResult, periodsAhead int, currency string) string {
	var b strings.Builder
	fmt.Fprint(&b, "# Trend\n\n")
	if p.RSquared == 0 && p.Slope.IsZero() && p.Intercept.IsZero() {
		fmt.Fprintf(&b, "Not enough history to project, at least %d values are required.\n", wallet.MinHistory)
		return b.String()
	}
	fmt.Fprintf(&b, "Projected value in %d periods: **%s** (%s)\n\n", periodsAhead, wallet.M(p.Predicted, currency), p.Trend)
	table(&b, "lr", "Fit", "Value")
	row(&b, "Slope per period", p.Slope.StringFixed(2))
	row(&b, "Intercept", p.Intercept.StringFixed(2))
	row(&b, "R²", fmt.Sprintf("%.3f", p.RSquared))
	row(&b, "Confidence", wallet.PercentOf(p.Confidence))
	return b.String()
}
