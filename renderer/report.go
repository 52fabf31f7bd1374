package renderer

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"

	"github.com/etnz/wallet"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// ReportMarkdown renders a complete wallet report. Every section is a level
// two heading.
func ReportMarkdown(r *wallet.Report, cfg wallet.Config) string {
	var b strings.Builder
	title := r.Address
	if title == "" {
		title = "Wallet"
	}
	fmt.Fprintf(&b, "# %s on %s\n\n", title, r.AsOf.Format("2006-01-02"))

	fmt.Fprint(&b, "## Overview\n\n")
	table(&b, "lr", "Metric", "Value")
	row(&b, "Total value", r.TotalValue)
	row(&b, "Realized gain", r.RealizedGain().SignedString())
	row(&b, "Unrealized gain", r.UnrealizedGain().SignedString())
	row(&b, "Estimated tax", r.Tax.EstimatedTax)
	row(&b, "Value history change", r.Performance.Change().SignedString()+" ("+r.Performance.Percent().SignedString()+")")
	row(&b, "Risk", fmt.Sprintf("%.0f/100 %s", r.Risk.Score, r.Risk.Level))
	row(&b, "Cluster", r.Cluster.Cluster)
	row(&b, "Trend", r.Prediction.Trend)
	fmt.Fprintln(&b)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "## Positions\n\n")
		table(w, "lrrrr", "Asset", "Holding", "Price", "Value", "Weight")
		for _, p := range r.Positions {
			var weight wallet.Percent
			if r.TotalValue.IsPositive() {
				weight = wallet.PercentOf(p.Value.Ratio(r.TotalValue).InexactFloat64())
			}
			row(w, p.Asset, p.Holding, p.Price, p.Value, weight)
		}
		fmt.Fprintln(w)
		return len(r.Positions) > 0
	})

	section(&b, CostBasisMarkdown(r.CostBasis, r.Method))
	section(&b, TaxMarkdown(r.Tax, cfg.Tax.ShortTermThresholdDays))
	section(&b, ActivityMarkdown(r.Activity))
	section(&b, MonthlyMarkdown(r.Monthly))
	section(&b, RiskMarkdown(r.Risk))
	section(&b, AnomaliesMarkdown(r.Anomalies))
	section(&b, ClusterMarkdown(r.Cluster))
	section(&b, PredictionMarkdown(r.Prediction, cfg.PeriodsAhead, r.TotalValue.Currency()))
	return b.String()
}

var heading = regexp.MustCompile(`(?m)^(#+) `)

// section appends a standalone markdown document one heading level deeper.
func section(b *strings.Builder, md string) {
	b.WriteString(heading.ReplaceAllString(md, "#$1 "))
	b.WriteString("\n")
}

// HTML converts a markdown report into a standalone HTML page.
func HTML(title, markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := md.Convert([]byte(markdown), &body); err != nil {
		return "", fmt.Errorf("cannot convert report to html: %w", err)
	}
	var b strings.Builder
	fmt.Fprint(&b, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(title))
	fmt.Fprint(&b, "<style>body{font-family:sans-serif;max-width:60em;margin:auto}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:.2em .6em}</style>\n")
	fmt.Fprint(&b, "</head>\n<body>\n")
	b.Write(body.Bytes())
	fmt.Fprint(&b, "</body>\n</html>\n")
	return b.String(), nil
}
