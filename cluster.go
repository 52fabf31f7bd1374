package wallet

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Cluster is a behavioural category of wallets.
type Cluster string

const (
	Whale        Cluster = "whale"
	Trader       Cluster = "trader"
	DeFiUser     Cluster = "defi-user"
	NFTCollector Cluster = "nft-collector"
	Holder       Cluster = "holder"
	Casual       Cluster = "casual"
)

// WalletStats are the inputs of the behaviour classifier.
type WalletStats struct {
	TotalValue       decimal.Decimal `json:"totalValue"`
	TxCount          int             `json:"txCount"`
	AvgDaysBetweenTx float64         `json:"avgDaysBetweenTx"`
	DeFiInteractions int             `json:"defiInteractions"`
	NFTCount         int             `json:"nftCount"`
}

// NewWalletStats derives the transaction count and the average number of
// days between consecutive transactions from a chronologically ordered
// history. A history of less than two transactions has no gap: 0.
func NewWalletStats(txs []Transaction, totalValue Money, defi, nft int) WalletStats {
	s := WalletStats{
		TotalValue:       totalValue.Decimal(),
		TxCount:          len(txs),
		DeFiInteractions: defi,
		NFTCount:         nft,
	}
	if len(txs) > 1 {
		span := txs[len(txs)-1].Timestamp.Sub(txs[0].Timestamp)
		s.AvgDaysBetweenTx = span.Hours() / 24 / float64(len(txs)-1)
	}
	return s
}

// ClusterResult is the category of a wallet with the reasons for it.
type ClusterResult struct {
	Cluster         Cluster  `json:"cluster"`
	Confidence      float64  `json:"confidence"`
	Characteristics []string `json:"characteristics"`
}

// rule is one entry of the classifier decision list.
type rule struct {
	cluster    Cluster
	confidence float64
	match      func(WalletStats, ClusterConfig) []string // nil when the rule does not match.
}

// clusterRules returns the classifier rules, evaluated in order: the first
// match wins.
func clusterRules() []rule {
	return []rule{
		{Whale, 0.9, func(s WalletStats, c ClusterConfig) []string {
			if !s.TotalValue.GreaterThan(c.WhaleValue) {
				return nil
			}
			return []string{fmt.Sprintf("total value %s above %s", s.TotalValue.StringFixed(2), c.WhaleValue)}
		}},
		{Trader, 0.85, func(s WalletStats, c ClusterConfig) []string {
			if s.TxCount <= c.TraderMinTxs || s.AvgDaysBetweenTx >= c.TraderMaxDaysBetween {
				return nil
			}
			return []string{
				fmt.Sprintf("%d transactions, more than %d", s.TxCount, c.TraderMinTxs),
				fmt.Sprintf("a transaction every %s", days(s.AvgDaysBetweenTx)),
			}
		}},
		{DeFiUser, 0.8, func(s WalletStats, c ClusterConfig) []string {
			if s.DeFiInteractions <= c.DeFiMinInteractions {
				return nil
			}
			return []string{fmt.Sprintf("%d DeFi interactions, more than %d", s.DeFiInteractions, c.DeFiMinInteractions)}
		}},
		{NFTCollector, 0.75, func(s WalletStats, c ClusterConfig) []string {
			if s.NFTCount <= c.NFTMinCount {
				return nil
			}
			return []string{fmt.Sprintf("%d NFTs held, more than %d", s.NFTCount, c.NFTMinCount)}
		}},
		{Holder, 0.7, func(s WalletStats, c ClusterConfig) []string {
			if s.TxCount >= c.HolderMaxTxs || s.AvgDaysBetweenTx <= c.HolderMinDaysBetween {
				return nil
			}
			return []string{
				fmt.Sprintf("only %d transactions", s.TxCount),
				fmt.Sprintf("a transaction every %s", days(s.AvgDaysBetweenTx)),
			}
		}},
	}
}

// ClassifyWallet assigns a wallet to a behavioural cluster. It walks an
// ordered list of rules and stops at the first match: it is a decision list,
// not a statistical model. A wallet matching no rule is casual.
func ClassifyWallet(stats WalletStats, cfg ClusterConfig) ClusterResult {
	for _, r := range clusterRules() {
		if characteristics := r.match(stats, cfg); characteristics != nil {
			return ClusterResult{Cluster: r.cluster, Confidence: r.confidence, Characteristics: characteristics}
		}
	}
	return ClusterResult{
		Cluster:         Casual,
		Confidence:      0.5,
		Characteristics: []string{"no distinctive activity"},
	}
}

// days formats a number of days like "1.5 days".
func days(d float64) string { return fmt.Sprintf("%.1f days", d) }
