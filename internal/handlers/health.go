package handlers

import "net/http"

// Health reports process liveness for the diagnostics listener.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
