package testutil

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"daycalc/internal/calculator"
	"daycalc/internal/history"
	"daycalc/internal/observability"
)

// InitInstruments registers the domain metric instruments that tests exercise
// indirectly. Instruments bind to the global (no-op) meter provider, so this
// is safe to call from any number of tests.
func InitInstruments(t testing.TB) {
	t.Helper()

	if err := calculator.InitMetrics(); err != nil {
		t.Fatalf("initializing calculator metrics: %v", err)
	}
	if err := history.InitMetrics(); err != nil {
		t.Fatalf("initializing history metrics: %v", err)
	}
}

// ObserveLogs swaps the global logger for an in-memory observer and restores
// the previous logger when the test finishes.
func ObserveLogs(t testing.TB) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zap.InfoLevel)

	prev := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = prev })

	return logs
}
