package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/etnz/wallet"
)

// inputFlags are the flags shared by the commands that analyze a wallet.
type inputFlags struct {
	transactions string
	wallet       string
}

func (i *inputFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&i.transactions, "l", TransactionsFile(), "Path to the transactions file (JSONL format)")
	f.StringVar(&i.wallet, "w", WalletFile(), "Path to the wallet file (JSON format)")
}

// load reads the wallet file, then appends the transactions of the
// transactions file.
func (i *inputFlags) load() (wallet.WalletInput, error) {
	return loadWalletInput(i.wallet, i.transactions)
}

// loadWalletInput decodes a wallet file and a transactions file. Either can
// be missing, but not both.
func loadWalletInput(walletPath, transactionsPath string) (wallet.WalletInput, error) {
	l := logger("input")
	var in wallet.WalletInput

	f, err := os.Open(walletPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.Warn().Str("file", walletPath).Msg("wallet file does not exist, using an empty wallet instead")
	case err != nil:
		return in, err
	default:
		defer f.Close()
		if in, err = wallet.DecodeWalletInput(f); err != nil {
			return in, fmt.Errorf("%s: %w", walletPath, err)
		}
		l.Debug().Str("file", walletPath).Int("prices", len(in.Prices)).Msg("wallet loaded")
	}

	txs, err := decodeTransactionsFile(transactionsPath)
	switch {
	case errors.Is(err, fs.ErrNotExist) && len(in.Transactions) > 0:
		l.Debug().Str("file", transactionsPath).Msg("transactions file does not exist, using the wallet transactions")
	case err != nil:
		return in, err
	default:
		in.Transactions = append(in.Transactions, txs...)
	}
	l.Debug().Int("transactions", len(in.Transactions)).Msg("transactions loaded")
	return in, nil
}

func decodeTransactionsFile(path string) ([]wallet.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	txs, err := wallet.DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return txs, nil
}

// siblingTransactions returns the transactions file that goes with a wallet
// file: wallet.json goes with wallet.jsonl.
func siblingTransactions(walletPath string) string {
	return strings.TrimSuffix(walletPath, ".json") + ".jsonl"
}
