// metrics — Prometheus-метрики search-service (HTTP-слой и поиск).
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы поиска для search_requests_total.
const (
	OutcomeOK       = "ok"
	OutcomeCacheHit = "cache_hit"
	OutcomeDegraded = "degraded"
)

// Metrics агрегирует коллекторы сервиса.
// Нулевой указатель допустим: все методы становятся no-op.
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	searches     *prometheus.CounterVec
	degraded     *prometheus.CounterVec
	searchTime   prometheus.Histogram
}

// New создаёт коллекторы и регистрирует их в reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobsync",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "jobsync",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobsync",
			Name:      "search_requests_total",
			Help:      "Job searches by outcome (ok, cache_hit, degraded).",
		}, []string{"outcome"}),
		degraded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jobsync",
			Name:      "search_degraded_total",
			Help:      "Searches answered with the empty fallback, by failure reason.",
		}, []string{"reason"}),
		searchTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "jobsync",
			Name:      "search_store_duration_seconds",
			Help:      "Time spent in the job store per search (count + page).",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(m.httpRequests, m.httpDuration, m.searches, m.degraded, m.searchTime)

	return m
}

// ObserveHTTP фиксирует завершённый HTTP-запрос.
func (m *Metrics) ObserveHTTP(method, route string, status int, dur time.Duration) {
	if m == nil {
		return
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(dur.Seconds())
}

// SearchOutcome увеличивает счётчик исходов поиска.
func (m *Metrics) SearchOutcome(outcome string) {
	if m == nil {
		return
	}

	m.searches.WithLabelValues(outcome).Inc()
}

// SearchDegraded фиксирует деградацию с причиной.
func (m *Metrics) SearchDegraded(reason string) {
	if m == nil {
		return
	}

	m.searches.WithLabelValues(OutcomeDegraded).Inc()
	m.degraded.WithLabelValues(reason).Inc()
}

// ObserveStore фиксирует время работы с хранилищем.
func (m *Metrics) ObserveStore(dur time.Duration) {
	if m == nil {
		return
	}

	m.searchTime.Observe(dur.Seconds())
}
