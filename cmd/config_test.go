package cmd

import (
	"errors"
	"testing"

	"github.com/etnz/wallet"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want func(wallet.Config) bool
	}{
		{
			name: "defaults",
			want: func(c wallet.Config) bool {
				return c.Method == wallet.FIFO && c.Jurisdiction == wallet.US && c.Tax.ShortTermThresholdDays == 365 && c.Location.String() == "UTC"
			},
		},
		{
			name: "overrides",
			env:  map[string]string{EnvMethod: "hifo", EnvJurisdiction: "eu", EnvShortTermDays: "30", EnvTimezone: "Europe/Paris"},
			want: func(c wallet.Config) bool {
				return c.Method == wallet.HIFO && c.Jurisdiction == wallet.EU && c.Tax.ShortTermThresholdDays == 30 && c.Location.String() == "Europe/Paris"
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{EnvMethod, EnvJurisdiction, EnvShortTermDays, EnvTimezone} {
				t.Setenv(key, tc.env[key])
			}
			got, err := LoadConfig()
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if !tc.want(got) {
				t.Errorf("LoadConfig() = %+v, unexpected", got)
			}
		})
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		key, value string
		want       error
	}{
		{EnvMethod, "random", wallet.ErrInvalidConfiguration},
		{EnvJurisdiction, "FR", wallet.ErrInvalidInput},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			if _, err := LoadConfig(); !errors.Is(err, tc.want) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tc.want)
			}
		})
	}

	t.Run(EnvShortTermDays, func(t *testing.T) {
		t.Setenv(EnvShortTermDays, "a year")
		if _, err := LoadConfig(); err == nil {
			t.Errorf("LoadConfig() error = nil, want an error")
		}
	})
	t.Run(EnvTimezone, func(t *testing.T) {
		t.Setenv(EnvTimezone, "Mars/Olympus")
		if _, err := LoadConfig(); err == nil {
			t.Errorf("LoadConfig() error = nil, want an error")
		}
	})
}

func TestTransactionsFile(t *testing.T) {
	t.Setenv(EnvTransactions, "")
	if got := TransactionsFile(); got != defaultLedgerFile {
		t.Errorf("TransactionsFile() = %q, want %q", got, defaultLedgerFile)
	}
	t.Setenv(EnvTransactions, "other.jsonl")
	if got := TransactionsFile(); got != "other.jsonl" {
		t.Errorf("TransactionsFile() = %q, want %q", got, "other.jsonl")
	}
}
