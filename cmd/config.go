package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/etnz/wallet"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	EnvMethod         = "WA_METHOD"
	EnvJurisdiction   = "WA_JURISDICTION"
	EnvShortTermDays  = "WA_SHORT_TERM_DAYS"
	EnvTimezone       = "WA_TIMEZONE"
	EnvLogLevel       = "WA_LOG_LEVEL"
	EnvTransactions   = "WA_TRANSACTIONS"
	EnvWallet         = "WA_WALLET"
	EnvVerbose        = "WA_VERBOSE"
	defaultLedgerFile = "transactions.jsonl"
	defaultWalletFile = "wallet.json"
)

// LoadEnv loads environment variables from the .env file, if present.
// Variables already set in the environment take precedence.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, relying on actual environment variables")
	}
}

// LoadConfig returns the default engine configuration overridden by the
// WA_* environment variables.
func LoadConfig() (wallet.Config, error) {
	cfg := wallet.DefaultConfig()

	method, err := wallet.ParseCostBasisMethod(getEnvWithDefault(EnvMethod, cfg.Method.String()))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", EnvMethod, err)
	}
	cfg.Method = method

	j, err := wallet.ParseJurisdiction(getEnvWithDefault(EnvJurisdiction, cfg.Jurisdiction.String()))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", EnvJurisdiction, err)
	}
	cfg.Jurisdiction = j

	days, err := getEnvIntWithDefault(EnvShortTermDays, cfg.Tax.ShortTermThresholdDays)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", EnvShortTermDays, err)
	}
	cfg.Tax.ShortTermThresholdDays = days

	loc, err := time.LoadLocation(getEnvWithDefault(EnvTimezone, "UTC"))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", EnvTimezone, err)
	}
	cfg.Location = loc

	log.Debug().
		Str("method", cfg.Method.String()).
		Str("jurisdiction", cfg.Jurisdiction.String()).
		Int("shortTermDays", cfg.Tax.ShortTermThresholdDays).
		Str("timezone", cfg.Location.String()).
		Msg("configuration loaded")
	return cfg, cfg.Validate()
}

// TransactionsFile returns the path of the transactions file.
func TransactionsFile() string {
	if *transactionsFile != "" {
		return *transactionsFile
	}
	return getEnvWithDefault(EnvTransactions, defaultLedgerFile)
}

// WalletFile returns the path of the wallet file.
func WalletFile() string {
	if *walletFile != "" {
		return *walletFile
	}
	return getEnvWithDefault(EnvWallet, defaultWalletFile)
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(value)
}
