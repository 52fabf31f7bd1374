package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

// costBasisCmd holds the flags for the 'costbasis' subcommand.
type costBasisCmd struct {
	inputFlags
	method string
	asset  string
	events bool
}

func (*costBasisCmd) Name() string     { return "costbasis" }
func (*costBasisCmd) Synopsis() string { return "realized and unrealized gains per asset" }
func (*costBasisCmd) Usage() string {
	return `wa costbasis [-l <file>] [-w <file>] [-method <method>] [-asset <asset>] [-events]

  Matches sells against the open lots of each asset and displays the realized
  and unrealized gains. The wallet file must list the price of every asset
  still held.
`
}

func (c *costBasisCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.method, "method", "", "Cost basis method (fifo, lifo, hifo, average). Defaults to $WA_METHOD, or fifo")
	f.StringVar(&c.asset, "asset", "", "Restrict the report to a single asset")
	f.BoolVar(&c.events, "events", false, "List every realized gain event")
}

func (c *costBasisCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.method != "" {
		if cfg.Method, err = wallet.ParseCostBasisMethod(c.method); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cost basis method: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	in, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.asset != "" {
		assets := wallet.Assets(in)
		if !slices.Contains(assets, c.asset) {
			fmt.Fprintf(os.Stderr, "Unknown asset %q, the wallet holds: %s\n", c.asset, strings.Join(assets, ", "))
			return subcommands.ExitUsageError
		}
	}

	results, err := wallet.ComputeAllCostBasis(wallet.SortByTime(in.Transactions), in.Prices, cfg.Method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing cost basis: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.asset != "" {
		results = slices.DeleteFunc(results, func(r *wallet.CostBasisResult) bool { return r.Asset != c.asset })
	}

	md := renderer.CostBasisMarkdown(results, cfg.Method)
	if c.events {
		var events []wallet.RealizedGainEvent
		for _, r := range results {
			events = append(events, r.Events...)
		}
		md += "\n" + renderer.EventsMarkdown(events)
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
