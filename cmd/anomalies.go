package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type anomaliesCmd struct {
	inputFlags
}

func (*anomaliesCmd) Name() string     { return "anomalies" }
func (*anomaliesCmd) Synopsis() string { return "detect unusual transactions" }
func (*anomaliesCmd) Usage() string {
	return `wa anomalies [-l <file>] [-w <file>]

  Flags transactions that are much larger than the average, large ones in
  rapid succession, and trades of assets the wallet is not familiar with
  (the knownAssets of the wallet file).
`
}

func (c *anomaliesCmd) SetFlags(f *flag.FlagSet) { c.inputFlags.SetFlags(f) }

func (c *anomaliesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	in, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	// Anomalies do not need current prices, so the full analysis is skipped.
	txs := wallet.SortByTime(in.Transactions)
	known := make(map[string]struct{}, len(in.KnownAssets))
	for _, a := range in.KnownAssets {
		known[a] = struct{}{}
	}
	avg := wallet.AverageTransactionValue(txs)
	logger("anomalies").Debug().Str("average", avg.String()).Int("known", len(known)).Msg("detecting anomalies")

	printMarkdown(renderer.AnomaliesMarkdown(wallet.DetectAnomalies(txs, avg, known, cfg.Anomaly)))
	return subcommands.ExitSuccess
}
