package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OperationMetrics records per-operation counters and latency for a service.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)
}

type prometheusOperationMetrics struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewOperationMetrics registers operation metrics on the given registerer.
func NewOperationMetrics(reg prometheus.Registerer) OperationMetrics {
	labels := []string{"operation", "service"}
	m := &prometheusOperationMetrics{
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorekeeper_operation_attempts_total",
			Help: "Number of service operations attempted.",
		}, labels),
		successes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorekeeper_operation_successes_total",
			Help: "Number of service operations that completed successfully.",
		}, labels),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scorekeeper_operation_failures_total",
			Help: "Number of service operations that failed with an infrastructure error.",
		}, labels),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scorekeeper_operation_duration_seconds",
			Help:    "Latency of service operations.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
	reg.MustRegister(m.attempts, m.successes, m.failures, m.durations)
	return m
}

func (m *prometheusOperationMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.attempts.WithLabelValues(operation, service).Inc()
}

func (m *prometheusOperationMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.successes.WithLabelValues(operation, service).Inc()
}

func (m *prometheusOperationMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.failures.WithLabelValues(operation, service).Inc()
}

func (m *prometheusOperationMetrics) RecordOperationDuration(_ context.Context, operation, service string, duration time.Duration) {
	m.durations.WithLabelValues(operation, service).Observe(duration.Seconds())
}

type noopOperationMetrics struct{}

// NewNoopMetrics returns metrics that discard every observation. Used in tests.
func NewNoopMetrics() OperationMetrics { return noopOperationMetrics{} }

func (noopOperationMetrics) RecordOperationAttempt(context.Context, string, string)  {}
func (noopOperationMetrics) RecordOperationSuccess(context.Context, string, string)  {}
func (noopOperationMetrics) RecordOperationFailure(context.Context, string, string)  {}
func (noopOperationMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {
}
