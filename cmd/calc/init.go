package main

import (
	"context"
	"fmt"

	"go-calc/internal/calculator"
	"go-calc/internal/config"
	"go-calc/internal/observability"
)

// initTelemetry starts the OTLP trace, metric and log pipelines when
// telemetry is enabled, then creates the calculator instruments. SDK errors
// are routed to the logger, which is silent in calculator mode. The
// returned shutdown functions must run before exit, in reverse order.
func initTelemetry(ctx context.Context, cfg *config.Config) ([]func(context.Context) error, error) {
	var shutdowns []func(context.Context) error

	observability.InitErrorHandler()

	if cfg.Telemetry.Enabled {
		observability.SetServiceName(cfg.Telemetry.ServiceName)

		traceShutdown, err := observability.InitTracing(ctx)
		if err != nil {
			return shutdowns, fmt.Errorf("init tracing: %w", err)
		}
		shutdowns = append(shutdowns, traceShutdown)

		metricShutdown, err := observability.InitMetrics(ctx)
		if err != nil {
			return shutdowns, fmt.Errorf("init metrics: %w", err)
		}
		shutdowns = append(shutdowns, metricShutdown)

		logShutdown, err := observability.InitLogging(ctx)
		if err != nil {
			return shutdowns, fmt.Errorf("init log export: %w", err)
		}
		shutdowns = append(shutdowns, logShutdown)
	}

	if err := calculator.InitMetrics(); err != nil {
		return shutdowns, err
	}

	return shutdowns, nil
}
