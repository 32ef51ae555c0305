package stats_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/walletkit/pkg/stats"
)

func TestRateMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := stats.NewRateMetrics(reg)
	require.NoError(t, err)

	start := time.Now()
	m.Observe("coinbase", start, nil)
	m.Observe("coinbase", start, nil)
	m.Observe("kraken", start, errors.New("down"))
	m.ObserveCached("store")

	require.Equal(t, float64(2), testutil.ToFloat64(m.Requests("coinbase", stats.OutcomeSuccess)))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Requests("kraken", stats.OutcomeFailure)))
	require.Equal(t, float64(1), testutil.ToFloat64(m.Requests("store", stats.OutcomeCached)))

	buf := &bytes.Buffer{}
	require.NoError(t, stats.Dump(reg, buf))
	require.Contains(t, buf.String(), "walletkit_rate_requests_total")

	_, err = stats.NewRateMetrics(reg)
	require.Error(t, err)
}

func TestNilRateMetrics(t *testing.T) {
	var m *stats.RateMetrics
	require.NotPanics(t, func() {
		m.Observe("coinbase", time.Now(), nil)
		m.ObserveCached("store")
	})
}
