package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"daycalc/internal/history"
	"daycalc/internal/observability"
	"daycalc/internal/server"
	"daycalc/internal/shell"
)

func main() {

	if err := loadDotEnv(); err != nil {
		panic(err)
	}

	ctx := context.Background()

	// Logger
	err := observability.InitLogger()
	if err != nil {
		panic(err)
	}
	defer observability.SyncLogger()

	// Telemetry
	telemetryShutdown, err := initTelemetry(ctx)
	if err != nil {
		panic(err)
	}
	defer telemetryShutdown(ctx)

	// Diagnostics listener (opt-in)
	diag := startDiagnostics()
	if diag != nil {
		defer stopDiagnostics(diag)
	}

	store := history.NewStore()
	sh := shell.New(os.Stdin, os.Stdout, store)

	observability.Logger.Info("calculator started")

	done := make(chan error, 1)
	go func() {
		done <- sh.Run(ctx)
	}()

	waitForExit(done)
}

// waitForExit blocks until the shell finishes or the user interrupts the
// session. Both paths end the process with exit code 0.
func waitForExit(done <-chan error) {

	stop := make(chan os.Signal, 1)

	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		fmt.Println("\n\nCalculator terminated by user.")
		observability.Logger.Info("session interrupted")
	case err := <-done:
		if err != nil {
			fmt.Printf("\nAn unexpected error occurred: %v\n", err)
			observability.Logger.Error("session ended unexpectedly", zap.Error(err))
		}
	}
}

// startDiagnostics serves /health and /metrics when CALC_DIAG_ADDR is set.
// A listener failure is logged and does not stop the calculator.
func startDiagnostics() *http.Server {
	addr := os.Getenv("CALC_DIAG_ADDR")
	if addr == "" {
		return nil
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: server.NewRouter(),
	}

	go func() {
		observability.Logger.Info("diagnostics listener started", zap.String("addr", addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			observability.Logger.Error("diagnostics listener failed", zap.Error(err))
		}
	}()

	return srv
}

func stopDiagnostics(srv *http.Server) {

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	srv.Shutdown(ctx)
}
