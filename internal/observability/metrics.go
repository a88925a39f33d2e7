package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the loyalty server.
type Metrics struct {
	// Registry owns the collectors and backs the /metrics endpoint.
	Registry *prometheus.Registry

	bonusTransactions    *prometheus.CounterVec
	notificationOutcomes *prometheus.CounterVec
	reclassifiedEntries  *prometheus.CounterVec
	jobRuns              *prometheus.CounterVec
	upstreamErrors       *prometheus.CounterVec
	httpRequests         *prometheus.CounterVec
	httpDuration         *prometheus.HistogramVec
}

// NewMetrics creates a private registry so repeated construction in tests
// never panics on duplicate registration.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		bonusTransactions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_bonus_transactions_total",
				Help: "Bonus ledger transactions appended, by type.",
			},
			[]string{"type"},
		),
		notificationOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_notification_outcomes_total",
				Help: "Per-channel notification outcomes.",
			},
			[]string{"channel", "outcome"},
		),
		reclassifiedEntries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_queue_entries_changed_total",
				Help: "Call queue entries changed by reclassification.",
			},
			[]string{"queue_type", "change"},
		),
		jobRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_job_runs_total",
				Help: "Scheduled job executions by result.",
			},
			[]string{"job", "result"},
		),
		upstreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_upstream_errors_total",
				Help: "Failed calls to external services.",
			},
			[]string{"service"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loyalty_http_requests_total",
				Help: "HTTP requests by route and status.",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "loyalty_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// RecordBonusTransaction increments the ledger counter.
func (m *Metrics) RecordBonusTransaction(txType string) {
	if m == nil {
		return
	}
	m.bonusTransactions.WithLabelValues(txType).Inc()
}

// RecordNotification increments the notification outcome counter.
func (m *Metrics) RecordNotification(channel, outcome string) {
	if m == nil {
		return
	}
	m.notificationOutcomes.WithLabelValues(channel, outcome).Inc()
}

// RecordQueueChange adds n to the reclassification counter.
func (m *Metrics) RecordQueueChange(queueType, change string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.reclassifiedEntries.WithLabelValues(queueType, change).Add(float64(n))
}

// RecordJobRun increments the job run counter.
func (m *Metrics) RecordJobRun(job string, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.jobRuns.WithLabelValues(job, result).Inc()
}

// RecordUpstreamError increments the upstream error counter.
func (m *Metrics) RecordUpstreamError(service string) {
	if m == nil {
		return
	}
	m.upstreamErrors.WithLabelValues(service).Inc()
}

// RecordHTTPRequest counts one request and observes its latency.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, latency time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(latency.Seconds())
}
