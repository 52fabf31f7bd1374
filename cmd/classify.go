package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wallet/renderer"
	"github.com/google/subcommands"
)

type classifyCmd struct {
	inputFlags
}

func (*classifyCmd) Name() string     { return "classify" }
func (*classifyCmd) Synopsis() string { return "classify the wallet behaviour" }
func (*classifyCmd) Usage() string {
	return `wa classify [-l <file>] [-w <file>]

  Classifies the wallet as a whale, a trader, a DeFi user, an NFT collector,
  a holder or a casual wallet.
`
}

func (c *classifyCmd) SetFlags(f *flag.FlagSet) { c.inputFlags.SetFlags(f) }

func (c *classifyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	r, _, err := analyze(&c.inputFlags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ClusterMarkdown(r.Cluster))
	return subcommands.ExitSuccess
}
