package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveHTTP("GET", "/search/categories", 200, 10*time.Millisecond)
	m.ObserveHTTP("GET", "/search/categories", 200, 20*time.Millisecond)
	m.SearchOutcome(OutcomeOK)
	m.SearchOutcome(OutcomeCacheHit)
	m.SearchDegraded("timeout")
	m.ObserveStore(5 * time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/search/categories", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(OutcomeOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(OutcomeCacheHit)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues(OutcomeDegraded)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.degraded.WithLabelValues("timeout")))

	n, err := testutil.GatherAndCount(reg, "jobsync_http_request_duration_seconds", "jobsync_search_store_duration_seconds")
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/", 200, time.Millisecond)
		m.SearchOutcome(OutcomeOK)
		m.SearchDegraded("other")
		m.ObserveStore(time.Millisecond)
	})
}

func TestNew_DoubleRegisterPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = New(reg)
	require.Panics(t, func() { _ = New(reg) })
}
