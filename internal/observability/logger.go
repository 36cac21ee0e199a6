package observability

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide logger. Stdout belongs to the interactive menu,
// so logging is off unless CALC_LOG selects a mode; enabled modes write to
// stderr.
var Logger = zap.NewNop()

// InitLogger configures Logger from the CALC_LOG environment variable:
// "" or "off" disables logging, "prod" emits production JSON, "dev" emits
// development console output.
func InitLogger() error {
	var err error

	switch mode := os.Getenv("CALC_LOG"); mode {
	case "", "off":
		Logger = zap.NewNop()
	case "prod":
		Logger, err = zap.NewProduction()
	case "dev":
		Logger, err = zap.NewDevelopment()
	default:
		err = fmt.Errorf("unknown CALC_LOG mode %q", mode)
	}

	return err
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx, so session logs can be correlated
// with exported traces when telemetry is enabled.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
