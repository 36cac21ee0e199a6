package main

import (
	"context"
	"os"

	"go.uber.org/multierr"

	"daycalc/internal/calculator"
	"daycalc/internal/history"
	"daycalc/internal/observability"
	"daycalc/internal/shell"
)

// initTelemetry installs the exporting OTel SDK when CALC_TELEMETRY is set,
// then registers the application's metric instruments. Instruments are
// registered even without the SDK; they bind to the global no-op provider so
// domain code can record unconditionally. Add new domain InitMetrics calls
// here as the project grows.
func initTelemetry(ctx context.Context) (func(context.Context) error, error) {
	shutdown := func(context.Context) error { return nil }

	if os.Getenv("CALC_TELEMETRY") != "" {
		traceShutdown, err := observability.InitTracing(ctx)
		if err != nil {
			return nil, err
		}

		metricShutdown, err := observability.InitMetrics(ctx)
		if err != nil {
			traceShutdown(ctx)
			return nil, err
		}

		shutdown = func(ctx context.Context) error {
			return multierr.Append(traceShutdown(ctx), metricShutdown(ctx))
		}
	}

	if err := calculator.InitMetrics(); err != nil {
		return nil, err
	}
	if err := history.InitMetrics(); err != nil {
		return nil, err
	}
	if err := shell.InitMetrics(); err != nil {
		return nil, err
	}

	return shutdown, nil
}
