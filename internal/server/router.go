package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"daycalc/internal/handlers"
	"daycalc/internal/observability"
)

// NewRouter builds the diagnostics router. It serves liveness and metrics
// only; calculations and history stay on the terminal.
func NewRouter() http.Handler {

	r := chi.NewRouter()

	r.Use(observability.OperationIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Handle("/metrics", observability.PrometheusHandler())

	return r
}
