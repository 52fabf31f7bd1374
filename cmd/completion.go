package cmd

import (
	"flag"

	"github.com/etnz/wallet"
	"github.com/etnz/wallet/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors complete flag values by flag name. Other flags complete to
// anything.
var flagPredictors = map[string]complete.Predictor{
	"l":            predict.Files("*.jsonl"),
	"w":            predict.Files("*.json"),
	"method":       predict.Set(methodNames()),
	"jurisdiction": predict.Set{"US", "UK", "EU"},
	"period":       predict.Set{"daily", "weekly", "monthly", "quarterly", "yearly"},
}

func methodNames() []string {
	var names []string
	for _, m := range wallet.CostBasisMethods {
		names = append(names, m.String())
	}
	return names
}

// Completion returns the shell completion of the commands, with their
// flags.
func Completion(cmds ...subcommands.Command) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command, len(cmds)),
		Flags: make(map[string]complete.Predictor),
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predictor(f)
	})

	for _, c := range cmds {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = predictor(f)
		})
		switch c.Name() {
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(topics)
		case "report":
			sub.Args = predict.Files("*.json")
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// predictor returns the predictor of a flag value.
func predictor(f *flag.Flag) complete.Predictor {
	if p, ok := flagPredictors[f.Name]; ok {
		return p
	}
	// Boolean flags take no value.
	if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return nil
	}
	return predict.Something
}
