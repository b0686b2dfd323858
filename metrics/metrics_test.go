package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safemoney/balance"
)

func TestAccountCollector(t *testing.T) {
	acc, err := balance.NewAccount(balance.MustParse("0.00"), 2)
	require.NoError(t, err)

	require.NoError(t, acc.Add(balance.MustParse("5.00")))
	require.NoError(t, acc.Add(balance.MustParse("2.50")))
	require.NoError(t, acc.Withdraw(balance.MustParse("1.00")))

	collector := NewAccountCollector(acc, prometheus.Labels{"account": "checking"})

	const expected = `# HELP account_adds_total Total number of committed add operations.
# TYPE account_adds_total counter
account_adds_total{account="checking"} 2
# HELP account_balance Current account balance. Converted to float64 for export; approximate, never used for accounting.
# TYPE account_balance gauge
account_balance{account="checking"} 6.5
# HELP account_publish_conflicts_total Total number of optimistic publish conflicts that were retried.
# TYPE account_publish_conflicts_total counter
account_publish_conflicts_total{account="checking"} 0
# HELP account_withdrawals_total Total number of committed withdrawals.
# TYPE account_withdrawals_total counter
account_withdrawals_total{account="checking"} 1
`
	require.NoError(t, testutil.CollectAndCompare(collector, strings.NewReader(expected)))
}

func TestAccountCollector_Register(t *testing.T) {
	acc, err := balance.NewAccount(balance.MustParse("0.00"), 2)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	require.NoError(t, registry.Register(NewAccountCollector(acc, prometheus.Labels{"account": "savings"})))

	assert.Equal(t, 4, testutil.CollectAndCount(NewAccountCollector(acc, nil)))
}
