package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type taxCmd struct {
	inputFlags
	method       string
	jurisdiction string
	year         int
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "estimate the tax due on realized gains and income" }
func (*taxCmd) Usage() string {
	return `wa tax [-l <file>] [-method <method>] [-jurisdiction <code>] [-year <year>]

  Estimates the tax due on realized gains and income, with the flat rates of
  a jurisdiction (US, UK, EU). Gains held for less than $WA_SHORT_TERM_DAYS
  days are short term.
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.StringVar(&c.method, "method", "", "Cost basis method (fifo, lifo, hifo, average). Defaults to $WA_METHOD, or fifo")
	f.StringVar(&c.jurisdiction, "jurisdiction", "", "Tax jurisdiction (US, UK, EU). Defaults to $WA_JURISDICTION, or US")
	f.IntVar(&c.year, "year", 0, "Only tax the events disposed during that year")
}

func (c *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if c.jurisdiction != "" {
		if cfg.Jurisdiction, err = wallet.ParseJurisdiction(c.jurisdiction); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing jurisdiction: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	in, err := c.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet: %v\n", err)
		return subcommands.ExitFailure
	}

	// Taxes only need the realized events, current prices are not required.
	ledger, err := wallet.NewLedger(cfg.Method)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	for i, tx := range wallet.SortByTime(in.Transactions) {
		if err := ledger.Apply(tx); err != nil {
			fmt.Fprintf(os.Stderr, "Error in transaction #%d: %v\n", i+1, err)
			return subcommands.ExitFailure
		}
	}
	events := ledger.Events()
	if c.year != 0 {
		events = eventsOf(events, c.year, cfg.Location)
	}

	report, err := wallet.EstimateTax(events, cfg.Jurisdiction, cfg.Tax)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error estimating tax: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TaxMarkdown(report, cfg.Tax.ShortTermThresholdDays))
	return subcommands.ExitSuccess
}

// eventsOf returns the events disposed during year.
func eventsOf(events []wallet.RealizedGainEvent, year int, loc *time.Location) []wallet.RealizedGainEvent {
	var selected []wallet.RealizedGainEvent
	for _, e := range events {
		if wallet.DateOf(e.DisposedAt, loc).Year() == year {
			selected = append(selected, e)
		}
	}
	return selected
}
