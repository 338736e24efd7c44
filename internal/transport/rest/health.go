package rest

import (
	"context"
	"net/http"
	"time"
)

// pinger defines the minimal interface for dependency health checks.
type pinger interface {
	Ping(ctx context.Context) error
}

// catalogInfo reports the size of the loaded rule tables.
type catalogInfo interface {
	AddPatterns() []string
	DeductPatterns() []string
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	analyzer pinger
	catalog  catalogInfo
	version  string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(analyzer pinger, catalog catalogInfo, version string) *HealthHandler {
	return &HealthHandler{analyzer: analyzer, catalog: catalog, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Patterns   *PatternCounts        `json:"patterns,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// PatternCounts is the number of syllable correction rules in each table.
type PatternCounts struct {
	Add    int `json:"add"`
	Deduct int `json:"deduct"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Runs the analyzer self-check: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.analyzer.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: analyzer self-check with latency, version
// and rule table sizes.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.analyzer.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["analyzer"] = CompStatus{Status: "down"}
		overallStatus = "down"
	} else {
		components["analyzer"] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Components: components,
		Patterns: &PatternCounts{
			Add:    len(h.catalog.AddPatterns()),
			Deduct: len(h.catalog.DeductPatterns()),
		},
		Timestamp: time.Now(),
	})
}
