package wallet

import (
	"fmt"
	"time"
)

// AnomalyKind identifies the check that raised an anomaly.
type AnomalyKind string

const (
	VolumeAnomaly     AnomalyKind = "volume"
	TimingAnomaly     AnomalyKind = "timing"
	UnfamiliarAnomaly AnomalyKind = "unfamiliar-asset"
)

// Severity grades an anomaly.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Anomaly is an unusual transaction.
type Anomaly struct {
	Kind        AnomalyKind       `json:"kind"`
	Severity    Severity          `json:"severity"`
	Description string            `json:"description"`
	Timestamp   time.Time         `json:"timestamp"`
	Asset       string            `json:"asset"`
	Details     map[string]string `json:"details"`
}

// DetectAnomalies flags unusual transactions in a chronologically ordered
// history:
//
//   - volume: the value exceeds VolumeMultiplier times avgValue, high
//     severity above HighVolumeMultiplier times.
//   - timing: the previous transaction is at most TimingWindow before and
//     the value exceeds TimingMultiplier times avgValue.
//   - unfamiliar-asset: the asset is not in known.
//
// Checks are independent, a transaction can raise several anomalies. A
// non-positive avgValue disables the checks relative to it.
func DetectAnomalies(txs []Transaction, avgValue Money, known map[string]struct{}, cfg AnomalyConfig) []Anomaly {
	var anomalies []Anomaly
	relative := avgValue.IsPositive()

	for i, tx := range txs {
		value := tx.Value()
		var ratio string
		if relative {
			ratio = value.Ratio(avgValue).StringFixed(1)
		}

		if relative && value.GreaterThan(avgValue.Scale(cfg.VolumeMultiplier)) {
			severity := SeverityMedium
			if value.GreaterThan(avgValue.Scale(cfg.HighVolumeMultiplier)) {
				severity = SeverityHigh
			}
			anomalies = append(anomalies, Anomaly{
				Kind:        VolumeAnomaly,
				Severity:    severity,
				Description: fmt.Sprintf("%s %s of %s is %s times the average transaction", tx.Type, tx.Asset, value, ratio),
				Timestamp:   tx.Timestamp,
				Asset:       tx.Asset,
				Details: map[string]string{
					"value":   value.String(),
					"average": avgValue.String(),
					"ratio":   ratio,
				},
			})
		}

		if relative && i > 0 {
			gap := tx.Timestamp.Sub(txs[i-1].Timestamp)
			if gap >= 0 && gap <= cfg.TimingWindow && value.GreaterThan(avgValue.Scale(cfg.TimingMultiplier)) {
				anomalies = append(anomalies, Anomaly{
					Kind:        TimingAnomaly,
					Severity:    SeverityMedium,
					Description: fmt.Sprintf("%s %s of %s only %s after the previous transaction", tx.Type, tx.Asset, value, gap),
					Timestamp:   tx.Timestamp,
					Asset:       tx.Asset,
					Details: map[string]string{
						"value": value.String(),
						"gap":   gap.String(),
						"ratio": ratio,
					},
				})
			}
		}

		if _, ok := known[tx.Asset]; !ok {
			anomalies = append(anomalies, Anomaly{
				Kind:        UnfamiliarAnomaly,
				Severity:    SeverityLow,
				Description: fmt.Sprintf("%s of %s, an asset never seen before", tx.Type, tx.Asset),
				Timestamp:   tx.Timestamp,
				Asset:       tx.Asset,
				Details:     map[string]string{"asset": tx.Asset},
			})
		}
	}
	return anomalies
}
