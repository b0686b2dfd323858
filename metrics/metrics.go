// Package metrics exports account activity as Prometheus metrics.
//
// An AccountCollector reads the counters published by
// [balance.Account.Stats] on every scrape, so instrumenting an account adds
// no work to the operation hot path.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/safemoney/balance"
)

// AccountCollector implements [prometheus.Collector] for a single account.
// Register it on the caller's registry:
//
//	registry.MustRegister(metrics.NewAccountCollector(acc, prometheus.Labels{"account": "savings"}))
type AccountCollector struct {
	account *balance.Account

	adds        *prometheus.Desc
	withdrawals *prometheus.Desc
	conflicts   *prometheus.Desc
	balance     *prometheus.Desc
}

// NewAccountCollector returns a collector for the given account.
// The constant labels distinguish collectors for different accounts on the
// same registry.
func NewAccountCollector(account *balance.Account, labels prometheus.Labels) *AccountCollector {
	return &AccountCollector{
		account: account,
		adds: prometheus.NewDesc(
			"account_adds_total",
			"Total number of committed add operations.",
			nil, labels,
		),
		withdrawals: prometheus.NewDesc(
			"account_withdrawals_total",
			"Total number of committed withdrawals.",
			nil, labels,
		),
		conflicts: prometheus.NewDesc(
			"account_publish_conflicts_total",
			"Total number of optimistic publish conflicts that were retried.",
			nil, labels,
		),
		balance: prometheus.NewDesc(
			"account_balance",
			"Current account balance. Converted to float64 for export; approximate, never used for accounting.",
			nil, labels,
		),
	}
}

// Describe implements the [prometheus.Collector] interface.
func (c *AccountCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.adds
	ch <- c.withdrawals
	ch <- c.conflicts
	ch <- c.balance
}

// Collect implements the [prometheus.Collector] interface.
func (c *AccountCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.account.Stats()
	ch <- prometheus.MustNewConstMetric(c.adds, prometheus.CounterValue, float64(stats.Adds))
	ch <- prometheus.MustNewConstMetric(c.withdrawals, prometheus.CounterValue, float64(stats.Withdrawals))
	ch <- prometheus.MustNewConstMetric(c.conflicts, prometheus.CounterValue, float64(stats.Conflicts))

	f, _ := c.account.Balance().Float64()
	ch <- prometheus.MustNewConstMetric(c.balance, prometheus.GaugeValue, f)
}
