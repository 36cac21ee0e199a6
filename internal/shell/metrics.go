package shell

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	menuCounter  metric.Int64Counter
	errorCounter metric.Int64Counter
)

// InitMetrics registers the OTel metric instruments for the menu loop. Call
// this once at startup, before the shell runs.
func InitMetrics() error {
	meter := otel.Meter("shell")

	var err error

	menuCounter, err = meter.Int64Counter("shell.menu.selections.total",
		metric.WithDescription("Total menu selections by action"),
		metric.WithUnit("{selection}"),
	)
	if err != nil {
		return fmt.Errorf("creating menu counter: %w", err)
	}

	errorCounter, err = meter.Int64Counter("shell.errors.total",
		metric.WithDescription("Total user-visible errors raised by menu actions"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	return nil
}
