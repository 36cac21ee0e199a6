package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads environment variables from .env when present. Existing
// process environment variables are not overridden.
//
// Recognized variables: CALC_LOG (logger mode), CALC_TELEMETRY (enable OTLP
// export), CALC_DIAG_ADDR (diagnostics listener address), OTEL_SERVICE_NAME.
// None of them change how calculations behave.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}
