// Package metrics provides the Prometheus collectors exported on /metrics.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds every collector the service exports.
type Metrics struct {
	RequestDuration   *prometheus.HistogramVec
	RequestTotal      *prometheus.CounterVec
	TransitionsTotal  *prometheus.CounterVec
	ConflictRetries   *prometheus.CounterVec
	DashboardDegraded *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quizreview_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		RequestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quizreview_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		TransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quizreview_verification_transitions_total",
				Help: "Verification state transitions by action and outcome.",
			},
			[]string{"action", "outcome"},
		),
		ConflictRetries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quizreview_verification_conflict_retries_total",
				Help: "Transactions retried after a lock or serialization conflict.",
			},
			[]string{"action"},
		),
		DashboardDegraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quizreview_dashboard_degraded_total",
				Help: "Dashboard fields that fell back to their zero value.",
			},
			[]string{"field"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.RequestDuration, m.RequestTotal, m.TransitionsTotal, m.ConflictRetries, m.DashboardDegraded,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return m, nil
}

// RecordRequest records duration and count for one HTTP request. route must
// be the route pattern, not the raw path, to keep label cardinality bounded.
func (m *Metrics) RecordRequest(method, route string, statusCode int, durationSeconds float64) {
	status := strconv.Itoa(statusCode)
	m.RequestDuration.WithLabelValues(method, route, status).Observe(durationSeconds)
	m.RequestTotal.WithLabelValues(method, route, status).Inc()
}

// Transition counts a finished verification transition.
func (m *Metrics) Transition(action, outcome string) {
	m.TransitionsTotal.WithLabelValues(action, outcome).Inc()
}

// ConflictRetry counts one retried transaction.
func (m *Metrics) ConflictRetry(action string) {
	m.ConflictRetries.WithLabelValues(action).Inc()
}

// Degraded counts one dashboard field that was served as zero.
func (m *Metrics) Degraded(field string) {
	m.DashboardDegraded.WithLabelValues(field).Inc()
}
