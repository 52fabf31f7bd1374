// Package cmd implements the wa command line application, that analyzes a
// crypto wallet.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	transactionsFile = flag.String("l", "", "Path to the transactions file (JSONL format). Defaults to $WA_TRANSACTIONS, or transactions.jsonl")
	walletFile       = flag.String("w", "", "Path to the wallet file (JSON format). Defaults to $WA_WALLET, or wallet.json")
	Verbose          = flag.Bool("v", false, "Print debug logs")
)

// Commands returns all the built-in subcommands.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&costBasisCmd{},
		&taxCmd{},
		&activityCmd{},
		&riskCmd{},
		&anomaliesCmd{},
		&classifyCmd{},
		&predictCmd{},
		&reportCmd{},
		&topicCmd{},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		group := "analysis"
		switch cmd.Name() {
		case "report":
			group = "reports"
		case "topic":
			group = "help"
		}
		c.Register(cmd, group)
	}
}

// Setup loads the .env file and configures the logger. It must be called
// after the flags are parsed.
func Setup() {
	LoadEnv()
	SetupLogging(getEnvWithDefault(EnvLogLevel, "info"), *Verbose)
}

// printMarkdown renders markdown for the terminal, and falls back to the
// raw markdown if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Debug().Err(err).Msg("cannot render markdown")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
