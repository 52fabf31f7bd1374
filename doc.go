// Package wallet turns the raw transaction history of a crypto wallet into
// derived financial intelligence. It is a pure library: it fetches nothing,
// persists nothing and reads no global state, every tunable is passed in a
// Config.
//
// The analyses are:
//   - Lot Ledger: matches sells against the acquired lots (FIFO, LIFO, HIFO or
//     average cost) and computes realized and unrealized gains.
//   - Tax Estimator: buckets realized gains into short and long term, and
//     applies a flat rate table per jurisdiction.
//   - Activity: hour, weekday and monthly histograms and per period breakdowns.
//   - Risk and anomalies: a clamped risk score from volatility, concentration
//     and new assets, and flags on unusual transactions.
//   - Behaviour: an ordered rule list assigning the wallet to a cluster (whale,
//     trader, holder…).
//   - Trend: a least squares projection of the wallet value.
//
// Analyze runs them all on a WalletInput and returns a Report; AnalyzeAll does
// it for many wallets concurrently.
//
// Amounts and prices use decimal arithmetic, results are estimates and not tax
// advice.
//
// This package is the engine of the `wa` command-line tool.
package wallet
