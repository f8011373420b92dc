package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// RecordError centralises failure reporting: it records err on the span,
// increments counter with the operation and error kind, and logs with trace
// context. A nil counter is skipped.
func RecordError(ctx context.Context, span trace.Span, logger *zap.Logger, counter metric.Int64Counter, opName, kind string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	if counter != nil {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", opName),
			attribute.String("error.kind", kind),
		))
	}

	fields := []zap.Field{
		zap.String("operation", opName),
		zap.String("error_kind", kind),
		zap.Error(err),
	}
	if id := RequestIDFromContext(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}

	logger.Warn("calculation failed", fields...)
}
