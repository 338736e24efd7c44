package rest

import "net/http"

// NewRouter registers every route on a fresh ServeMux. Patterns double as
// metric route labels.
func NewRouter(readability *ReadabilityHandler, health *HealthHandler, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /v1/analyze", readability.Analyze)
	mux.HandleFunc("POST /v1/syllables", readability.Syllables)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	return mux
}
