package history

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Metric instruments — initialized once via InitMetrics().
var (
	recordsCounter metric.Int64Counter
	daysGauge      metric.Int64Gauge
)

// InitMetrics registers the OTel metric instruments for the history domain.
// Call this once at startup.
func InitMetrics() error {
	meter := otel.Meter("history")

	var err error

	recordsCounter, err = meter.Int64Counter("history.records.total",
		metric.WithDescription("Total number of calculations recorded"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return fmt.Errorf("creating records counter: %w", err)
	}

	daysGauge, err = meter.Int64Gauge("history.days.active",
		metric.WithDescription("Number of days with at least one recorded calculation"),
		metric.WithUnit("{day}"),
	)
	if err != nil {
		return fmt.Errorf("creating days gauge: %w", err)
	}

	return nil
}
