package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"runtime"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	inputFlags
	json        bool
	html        bool
	query       string
	parallelism int
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "full analysis of one or more wallets" }
func (*reportCmd) Usage() string {
	return `wa report [-l <file>] [-w <file>] [-json | -html | -q <jsonpath>] [<wallet.json>...]

  Runs every analysis and prints a single report.

  Wallet files given as arguments are analyzed concurrently, instead of the
  -w wallet. Each one reads its transactions from the JSONL file with the
  same name (wallet.json goes with wallet.jsonl), when it exists.

Usage Examples:
# Total value of the wallet
$ wa report -q '$.totalValue'

# Cluster of several wallets
$ wa report -q '$[*].cluster.cluster' alice.json bob.json
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the report as JSON")
	f.BoolVar(&c.html, "html", false, "Print the report as a standalone HTML page")
	f.StringVar(&c.query, "q", "", "Print the result of a JSONPath query on the JSON report")
	f.IntVar(&c.parallelism, "p", runtime.NumCPU(), "Maximum number of wallets analyzed at once")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	formats := 0
	for _, set := range []bool{c.json, c.html, c.query != ""} {
		if set {
			formats++
		}
	}
	if formats > 1 {
		fmt.Fprintln(os.Stderr, "-json, -html and -q flags cannot be used together")
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	var inputs []wallet.WalletInput
	if f.NArg() == 0 {
		in, err := c.load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
			return subcommands.ExitFailure
		}
		inputs = append(inputs, in)
	}
	for _, path := range f.Args() {
		in, err := loadWalletFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading wallet %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		inputs = append(inputs, in)
	}

	reports, err := wallet.AnalyzeAll(ctx, inputs, cfg, c.parallelism)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing wallets: %v\n", err)
		return subcommands.ExitFailure
	}
	logger("report").Debug().Int("wallets", len(reports)).Msg("wallets analyzed")

	// A single wallet is reported as an object, several as an array.
	var doc any = reports
	if len(reports) == 1 {
		doc = reports[0]
	}

	switch {
	case c.json:
		err = writeJSON(os.Stdout, doc)
	case c.query != "":
		err = query(os.Stdout, doc, c.query)
	case c.html:
		var page string
		page, err = renderer.HTML(title(reports), markdown(reports, cfg))
		if err == nil {
			_, err = fmt.Print(page)
		}
	default:
		printMarkdown(markdown(reports, cfg))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error printing report: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// loadWalletFile loads a wallet file and its sibling transactions file.
func loadWalletFile(path string) (wallet.WalletInput, error) {
	in, err := loadWalletInput(path, siblingTransactions(path))
	if errors.Is(err, fs.ErrNotExist) {
		return in, fmt.Errorf("no transactions in %q nor in %q", path, siblingTransactions(path))
	}
	return in, err
}

func markdown(reports []*wallet.Report, cfg wallet.Config) string {
	docs := make([]string, len(reports))
	for i, r := range reports {
		docs[i] = renderer.ReportMarkdown(r, cfg)
	}
	return strings.Join(docs, "\n---\n\n")
}

func title(reports []*wallet.Report) string {
	if len(reports) == 1 && reports[0].Address != "" {
		return reports[0].Address
	}
	return "Wallet report"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// query evaluates a JSONPath expression on the JSON form of v and writes the
// result as JSON.
func query(w io.Writer, v any, path string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	result, err := jsonpath.Get(path, doc)
	if err != nil {
		return fmt.Errorf("invalid query %q: %w", path, err)
	}
	return writeJSON(w, result)
}
