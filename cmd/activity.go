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

type activityCmd struct {
	inputFlags
	year   int
	period string
	from   string
	to     string
}

func (*activityCmd) Name() string     { return "activity" }
func (*activityCmd) Synopsis() string { return "when the wallet is active" }
func (*activityCmd) Usage() string {
	return `wa activity [-l <file>] [-year <year>] [-period <period> [-from <date>] [-to <date>]]

  Counts transactions per hour of the day and per day of the week, then
  breaks them down per month of a year.

  With -period, the breakdown is per day, week, month, quarter or year
  between -from and -to instead. They default to the first and the last
  transaction. Relative dates like -3m are relative to the last transaction.
`
}

func (c *activityCmd) SetFlags(f *flag.FlagSet) {
	c.inputFlags.SetFlags(f)
	f.IntVar(&c.year, "year", 0, "Year of the monthly breakdown. Defaults to the year of the last transaction")
	f.StringVar(&c.period, "period", "", "Breakdown period (daily, weekly, monthly, quarterly, yearly)")
	f.StringVar(&c.from, "from", "", "Start date of the breakdown. See the user manual for supported date formats.")
	f.StringVar(&c.to, "to", "", "End date of the breakdown. See the user manual for supported date formats.")
}

func (c *activityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.period == "" && (c.from != "" || c.to != "") {
		fmt.Fprintln(os.Stderr, "-from and -to flags require -period")
		return subcommands.ExitUsageError
	}
	if c.period != "" && c.year != 0 {
		fmt.Fprintln(os.Stderr, "-year and -period flags cannot be used together")
		return subcommands.ExitUsageError
	}

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
	txs := wallet.SortByTime(in.Transactions)
	if len(txs) == 0 {
		fmt.Fprintln(os.Stderr, "No transactions to analyze")
		return subcommands.ExitFailure
	}
	first := wallet.DateOf(txs[0].Timestamp, cfg.Location)
	last := wallet.DateOf(txs[len(txs)-1].Timestamp, cfg.Location)

	md := renderer.ActivityMarkdown(wallet.BuildActivityPattern(txs, cfg.Location)) + "\n"

	if c.period == "" {
		year := c.year
		if year == 0 {
			year = last.Year()
		}
		md += renderer.MonthlyMarkdown(wallet.BuildMonthlyBreakdown(txs, year, cfg.Location))
		printMarkdown(md)
		return subcommands.ExitSuccess
	}

	p, err := wallet.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}
	r, err := parseRange(c.from, c.to, first, last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing dates: %v\n", err)
		return subcommands.ExitUsageError
	}
	md += renderer.BreakdownMarkdown(wallet.BuildBreakdown(txs, r, p, cfg.Location), p)
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// parseRange parses the bounds of a range, empty bounds are replaced by the
// defaults. Relative bounds like "-3m" are relative to defaultTo.
func parseRange(from, to string, defaultFrom, defaultTo wallet.Date) (wallet.Range, error) {
	var err error
	start, end := defaultFrom, defaultTo
	if from != "" {
		if start, err = wallet.ParseDateOn(from, defaultTo); err != nil {
			return wallet.Range{}, err
		}
	}
	if to != "" {
		if end, err = wallet.ParseDateOn(to, defaultTo); err != nil {
			return wallet.Range{}, err
		}
	}
	if end.Before(start) {
		return wallet.Range{}, fmt.Errorf("%w: %s is before %s", wallet.ErrInvalidInput, end, start)
	}
	return wallet.NewRange(start, end), nil
}
