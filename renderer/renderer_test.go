package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/etnz/wallet"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// outline parses markdown and returns its headings (prefixed by their
// level) and the number of tables.
func outline(t *testing.T, md string) (headings []string, tables int) {
	t.Helper()
	source := []byte(md)
	parser := goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()
	root := parser.Parse(text.NewReader(source))
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			headings = append(headings, strings.Repeat("#", n.Level)+" "+string(n.Text(source)))
		case *east.Table:
			tables++
		}
		return ast.WalkContinue, nil
	})
	return headings, tables
}

func at(d int) time.Time { return time.Date(2024, time.January, 1+d, 10, 0, 0, 0, time.UTC) }

func sampleReport(t *testing.T) (*wallet.Report, wallet.Config) {
	t.Helper()
	cfg := wallet.DefaultConfig()
	in := wallet.WalletInput{
		Address: "0xabc",
		Transactions: []wallet.Transaction{
			wallet.NewBuy(at(0), "ETH", wallet.Q(2), wallet.M(1000, "USD")),
			wallet.NewBuy(at(10), "UNI", wallet.Q(100), wallet.M(5, "USD")),
			wallet.NewSell(at(400), "ETH", wallet.Q(1), wallet.M(3000, "USD")),
			wallet.NewSell(at(401), "UNI", wallet.Q(150), wallet.M(6, "USD")),
		},
		Prices:      map[string]wallet.Money{"ETH": wallet.M(2500, "USD")},
		KnownAssets: []string{"ETH"},
	}
	r, err := wallet.Analyze(in, cfg)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	return r, cfg
}

func TestReportMarkdown(t *testing.T) {
	r, cfg := sampleReport(t)
	md := ReportMarkdown(r, cfg)

	headings, tables := outline(t, md)
	want := []string{
		"# 0xabc on 2025-02-05",
		"## Overview",
		"## Positions",
		"## Cost Basis",
		"### Open Lots",
		"### Unmatched Sells",
		"## Tax Estimate (US)",
		"## Activity",
		"### Day of Week",
		"### Hour of Day",
		"## Monthly Activity 2025",
		"## Risk",
		"## Anomalies",
		"## Behaviour",
		"## Trend",
	}
	if strings.Join(headings, "\n") != strings.Join(want, "\n") {
		t.Errorf("ReportMarkdown() headings =\n%s\nwant\n%s", strings.Join(headings, "\n"), strings.Join(want, "\n"))
	}
	if tables < 8 {
		t.Errorf("ReportMarkdown() has %d tables, want at least 8", tables)
	}
	for _, s := range []string{"$2,500.00", "UNI: 50", "Not enough history"} {
		if !strings.Contains(md, s) {
			t.Errorf("ReportMarkdown() does not contain %q:\n%s", s, md)
		}
	}
}

func TestCostBasisMarkdown_SkipsEmptySections(t *testing.T) {
	txs := []wallet.Transaction{
		wallet.NewBuy(at(0), "BTC", wallet.Q(1), wallet.M(100, "USD")),
		wallet.NewSell(at(1), "BTC", wallet.Q(1), wallet.M(150, "USD")),
	}
	results, err := wallet.ComputeAllCostBasis(txs, nil, wallet.FIFO)
	if err != nil {
		t.Fatalf("ComputeAllCostBasis() error = %v", err)
	}
	headings, _ := outline(t, CostBasisMarkdown(results, wallet.FIFO))
	if len(headings) != 1 {
		t.Errorf("CostBasisMarkdown() headings = %v, want only the title", headings)
	}
}

func TestAnomaliesMarkdown_SortsBySeverity(t *testing.T) {
	anomalies := []wallet.Anomaly{
		{Kind: wallet.UnfamiliarAnomaly, Severity: wallet.SeverityLow, Description: "low one", Timestamp: at(0)},
		{Kind: wallet.VolumeAnomaly, Severity: wallet.SeverityHigh, Description: "high one", Timestamp: at(1)},
	}
	md := AnomaliesMarkdown(anomalies)
	if strings.Index(md, "high one") > strings.Index(md, "low one") {
		t.Errorf("AnomaliesMarkdown() does not list high severity first:\n%s", md)
	}
}

func TestHTML(t *testing.T) {
	r, cfg := sampleReport(t)
	got, err := HTML("<0xabc>", ReportMarkdown(r, cfg))
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	for _, s := range []string{"<title>&lt;0xabc&gt;</title>", "<table>", "<h2>Overview</h2>", "</html>"} {
		if !strings.Contains(got, s) {
			t.Errorf("HTML() does not contain %q", s)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		count, top int
		want       string
	}{
		{0, 10, ""},
		{1, 100, "█"},
		{5, 10, "██████████"},
		{10, 10, "████████████████████"},
	}
	for _, tc := range tests {
		if got := bar(tc.count, tc.top, 20); got != tc.want {
			t.Errorf("bar(%d, %d, 20) = %q, want %q", tc.count, tc.top, got, tc.want)
		}
	}
}
