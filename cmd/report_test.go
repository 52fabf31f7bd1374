package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/wallet"
)

func TestQuery(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"alice.json":  testWallet,
		"alice.jsonl": testTransactions,
	})
	in, err := loadWalletFile(filepath.Join(dir, "alice.json"))
	if err != nil {
		t.Fatalf("loadWalletFile() error = %v", err)
	}
	r, err := wallet.Analyze(in, wallet.DefaultConfig())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	tests := []struct {
		query string
		doc   any
		want  string
	}{
		{"$.address", r, `"0xabc"`},
		{"$.method", r, `"fifo"`},
		{"$.positions[0].asset", r, `"ETH"`},
		{"$.stats.txCount", r, `2`},
		{"$.cluster.cluster", r, `"` + string(r.Cluster.Cluster) + `"`},
		{"$.risk.level", r, `"` + string(r.Risk.Level) + `"`},
		{"$[*].cluster.cluster", []*wallet.Report{r, r}, `["` + string(r.Cluster.Cluster) + `","` + string(r.Cluster.Cluster) + `"]`},
		{"$[*].address", []*wallet.Report{r, r}, `["0xabc","0xabc"]`},
	}
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			var b bytes.Buffer
			if err := query(&b, tc.doc, tc.query); err != nil {
				t.Fatalf("query(%q) error = %v", tc.query, err)
			}
			got := strings.Join(strings.Fields(b.String()), "")
			if got != tc.want {
				t.Errorf("query(%q) = %s, want %s", tc.query, got, tc.want)
			}
		})
	}

	if err := query(&bytes.Buffer{}, r, "$.["); err == nil {
		t.Errorf("query(%q) error = nil, want an error", "$.[")
	}
}

func TestLoadWalletFile_NoTransactions(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bob.json": testWallet})
	if _, err := loadWalletFile(filepath.Join(dir, "bob.json")); err == nil {
		t.Errorf("loadWalletFile() error = nil, want an error")
	}
}

func TestMarkdown(t *testing.T) {
	in, err := loadWalletFile(filepath.Join(writeFiles(t, map[string]string{
		"w.json":  testWallet,
		"w.jsonl": testTransactions,
	}), "w.json"))
	if err != nil {
		t.Fatalf("loadWalletFile() error = %v", err)
	}
	r, err := wallet.Analyze(in, wallet.DefaultConfig())
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	md := markdown([]*wallet.Report{r, r}, wallet.DefaultConfig())
	if got := strings.Count(md, "# 0xabc on "); got != 2 {
		t.Errorf("markdown() has %d reports, want 2", got)
	}
	if got := title([]*wallet.Report{r}); got != "0xabc" {
		t.Errorf("title() = %q, want %q", got, "0xabc")
	}
	if got := title([]*wallet.Report{r, r}); got != "Wallet report" {
		t.Errorf("title() = %q, want %q", got, "Wallet report")
	}
}
