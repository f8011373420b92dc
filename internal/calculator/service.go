package calculator

import (
	"context"
	"fmt"
	"time"

	"go-calc/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the calculator's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("calculator")

// Calculate applies op to a and b inside a "calculator.<op>" span, records
// the operation metrics, and logs the outcome with trace correlation.
func Calculate(ctx context.Context, op Operation, a, b Number) (Number, error) {
	opName := op.String()

	ctx, span := tracer.Start(ctx, fmt.Sprintf("calculator.%s", opName),
		trace.WithAttributes(
			attribute.String("calculator.operation", opName),
			attribute.String("calculator.operand.a", a.String()),
			attribute.String("calculator.operand.a.kind", a.Kind().String()),
			attribute.String("calculator.operand.b", b.String()),
			attribute.String("calculator.operand.b.kind", b.Kind().String()),
		),
	)
	defer span.End()

	logger := observability.LoggerWithTrace(ctx)

	start := time.Now()
	result, err := Apply(op, a, b)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, ErrorKind(err), err)
		return Number{}, err
	}

	attrs := metric.WithAttributes(attribute.String("operation", opName))
	if opsCounter != nil {
		opsCounter.Add(ctx, 1, attrs)
		opsHistogram.Record(ctx, elapsed, attrs)
	}
	if f, ferr := result.Float64(); ferr == nil && resultGauge != nil {
		resultGauge.Record(ctx, f, attrs)
	}

	span.AddEvent("computation.complete", trace.WithAttributes(
		attribute.String("result", result.String()),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(
		attribute.String("calculator.result", result.String()),
		attribute.String("calculator.result.kind", result.Kind().String()),
	)
	span.SetStatus(codes.Ok, "")

	logger.Debug("calculator operation completed",
		zap.String("operation", opName),
		zap.Stringer("a", a),
		zap.Stringer("b", b),
		zap.Stringer("result", result),
		zap.Stringer("kind", result.Kind()),
		zap.Float64("duration_ms", elapsed),
	)

	return result, nil
}
