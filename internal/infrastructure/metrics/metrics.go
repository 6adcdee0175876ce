package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus metrics for agreement lifecycle and HTTP traffic.
var (
	StatusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotelock_status_transitions_total",
			Help: "Status transition attempts by source status, target status and outcome",
		},
		[]string{"from", "to", "result"},
	)

	AuditEventsAppendedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotelock_audit_events_appended_total",
			Help: "Audit events appended by event type",
		},
		[]string{"type"},
	)

	LockedFieldViolationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quotelock_locked_field_violations_total",
			Help: "Updates rejected because they touched locked commercial fields",
		},
	)

	RateLimitedRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quotelock_rate_limited_requests_total",
			Help: "Public requests rejected by the rate limiter, by action",
		},
		[]string{"action"},
	)

	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
)

const (
	ResultSuccess  = "success"
	ResultRejected = "rejected"
	ResultConflict = "conflict"
	ResultError    = "error"
)

var registerOnce sync.Once

// Register registers all metrics with the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(StatusTransitionsTotal)
		prometheus.MustRegister(AuditEventsAppendedTotal)
		prometheus.MustRegister(LockedFieldViolationsTotal)
		prometheus.MustRegister(RateLimitedRequestsTotal)
		prometheus.MustRegister(HTTPRequestsTotal)
		prometheus.MustRegister(HTTPRequestDuration)
	})
}
