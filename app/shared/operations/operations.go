// Package operations provides the generic wrappers every lifecycle service
// runs its operations through: a telemetry envelope (tracing, metrics,
// logging, panic recovery) and a transaction runner. They are free functions
// because methods cannot have type parameters.
package operations

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ice-and-stone/scorekeeper/app/shared/results"
	"github.com/ice-and-stone/scorekeeper/internal/observability"
)

// Telemetry carries the instrumentation a service threads through its
// operations.
type Telemetry struct {
	Logger      *slog.Logger
	Metrics     observability.OperationMetrics
	Tracer      trace.Tracer
	ServiceName string
}

// Func is the generic signature for service operation functions.
type Func[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// WithTelemetry wraps a service operation with tracing, metrics, logging, and
// panic recovery.
func WithTelemetry[S any, F any](
	ctx context.Context,
	tel Telemetry,
	operationName string,
	identifier string,
	op Func[S, F],
) (result results.OperationResult[S, F], err error) {
	logger := tel.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var span trace.Span
	if tel.Tracer != nil {
		ctx, span = tel.Tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	if tel.Metrics != nil {
		tel.Metrics.RecordOperationAttempt(ctx, operationName, tel.ServiceName)
	}

	startTime := time.Now()
	defer func() {
		if tel.Metrics != nil {
			tel.Metrics.RecordOperationDuration(ctx, operationName, tel.ServiceName, time.Since(startTime))
		}
	}()

	logger.InfoContext(ctx, "Operation triggered",
		slog.String("operation", operationName),
		slog.String("identifier", identifier),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			logger.ErrorContext(ctx, "Critical panic recovered",
				slog.String("operation", operationName),
				slog.String("identifier", identifier),
				slog.Any("error", err),
			)
			if tel.Metrics != nil {
				tel.Metrics.RecordOperationFailure(ctx, operationName, tel.ServiceName)
			}
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		logger.ErrorContext(ctx, "Operation failed with error",
			slog.String("operation", operationName),
			slog.String("identifier", identifier),
			slog.Any("error", wrappedErr),
		)
		if tel.Metrics != nil {
			tel.Metrics.RecordOperationFailure(ctx, operationName, tel.ServiceName)
		}
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	if result.IsFailure() {
		logger.WarnContext(ctx, "Operation returned failure result",
			slog.String("operation", operationName),
			slog.String("identifier", identifier),
			slog.Any("failure_payload", *result.Failure),
		)
		// Domain failures count on the failure side so attempts always
		// equal successes plus failures.
		if tel.Metrics != nil {
			tel.Metrics.RecordOperationFailure(ctx, operationName, tel.ServiceName)
		}
	}

	if result.IsSuccess() {
		logger.InfoContext(ctx, "Operation completed successfully",
			slog.String("operation", operationName),
			slog.String("identifier", identifier),
		)
		if tel.Metrics != nil {
			tel.Metrics.RecordOperationSuccess(ctx, operationName, tel.ServiceName)
		}
	}

	return result, nil
}

// RunInTx ensures the operation runs within a transaction so each
// validate-then-mutate sequence commits as one atomic unit. A nil db (unit
// tests with fakes) runs the function against a nil handle, which
// repositories resolve to themselves.
func RunInTx[S any, F any](
	ctx context.Context,
	db *bun.DB,
	fn func(ctx context.Context, db bun.IDB) (results.OperationResult[S, F], error),
) (results.OperationResult[S, F], error) {
	if db == nil {
		return fn(ctx, nil)
	}

	var result results.OperationResult[S, F]

	err := db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var txErr error
		result, txErr = fn(ctx, tx)
		return txErr
	})

	return result, err
}
