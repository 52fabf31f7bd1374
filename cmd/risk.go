package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type riskCmd struct {
	inputFlags
}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "score the risk of the wallet" }
func (*riskCmd) Usage() string {
	return `wa risk [-l <file>] [-w <file>]

  Scores the risk of the wallet from 0 to 100, from the volatility of its
  value history, the concentration of its holdings and the share of
  unfamiliar assets it trades.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) { c.inputFlags.SetFlags(f) }

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, _, err := analyze(&c.inputFlags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RiskMarkdown(r.Risk))
	return subcommands.ExitSuccess
}
