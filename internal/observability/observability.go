// Package observability bundles the logger, operation metrics, and tracer
// handed to every module service.
package observability

import (
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Observability carries the ambient instrumentation for the application.
type Observability struct {
	Logger  *slog.Logger
	Metrics OperationMetrics
	Tracer  trace.Tracer
}

// New builds the production observability set. The tracer comes from the
// global otel provider, so it stays a no-op unless an SDK is installed by
// the deployment.
func New(environment string, reg prometheus.Registerer) Observability {
	level := slog.LevelInfo
	if environment == "development" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	return Observability{
		Logger:  logger,
		Metrics: NewOperationMetrics(reg),
		Tracer:  otel.Tracer("scorekeeper"),
	}
}

// NewTest returns a quiet observability set for unit tests.
func NewTest() Observability {
	return Observability{
		Logger:  slog.Default(),
		Metrics: NewNoopMetrics(),
		Tracer:  nil,
	}
}
