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

type predictCmd struct {
	wallet string
	ahead  int
}

func (*predictCmd) Name() string     { return "predict" }
func (*predictCmd) Synopsis() string { return "project the wallet value" }
func (*predictCmd) Usage() string {
	return `wa predict [-w <file>] [-ahead <periods>]

  Fits a straight line through the value history of the wallet file and
  projects it. At least 7 values are required.
`
}

func (c *predictCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.wallet, "w", WalletFile(), "Path to the wallet file (JSON format)")
	f.IntVar(&c.ahead, "ahead", wallet.DefaultConfig().PeriodsAhead, "Number of periods to project")
}

func (c *predictCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ahead < 0 {
		fmt.Fprintln(os.Stderr, "-ahead must not be negative")
		return subcommands.ExitUsageError
	}
	file, err := os.Open(c.wallet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening wallet file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	in, err := wallet.DecodeWalletInput(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading wallet %q: %v\n", c.wallet, err)
		return subcommands.ExitFailure
	}

	var currency string
	for _, p := range in.Prices {
		currency = p.Currency()
		break
	}
	p := wallet.PredictValue(in.History, c.ahead)
	printMarkdown(renderer.PredictionMarkdown(p, c.ahead, currency))
	return subcommands.ExitSuccess
}
