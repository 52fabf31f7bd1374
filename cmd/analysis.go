package cmd

import (
	"fmt"

	"github.com/etnz/wallet"
)

// analyze loads the configuration and the wallet, then runs every analysis.
func analyze(i *inputFlags) (*wallet.Report, wallet.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, cfg, fmt.Errorf("cannot load configuration: %w", err)
	}
	in, err := i.load()
	if err != nil {
		return nil, cfg, fmt.Errorf("cannot load wallet: %w", err)
	}
	r, err := wallet.Analyze(in, cfg)
	if err != nil {
		return nil, cfg, fmt.Errorf("cannot analyze wallet: %w", err)
	}
	logger("analysis").Debug().
		Str("address", r.Address).
		Str("cluster", string(r.Cluster.Cluster)).
		Float64("risk", r.Risk.Score).
		Int("anomalies", len(r.Anomalies)).
		Msg("wallet analyzed")
	return r, cfg, nil
}
