package rest

import (
	"context"
	"net/http"
	"time"
)

// backendPinger is satisfied by every storage backend.
type backendPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	backend     backendPinger
	backendName string
	version     string
	startedAt   time.Time
	now         func() time.Time
}

// NewHealthHandler creates a HealthHandler. A nil clock means time.Now.
func NewHealthHandler(backend backendPinger, backendName, version string, now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{
		backend:     backend,
		backendName: backendName,
		version:     version,
		startedAt:   now(),
		now:         now,
	}
}

// HealthResponse is the JSON response for /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Backend   string    `json:"backend"`
	Uptime    string    `json:"uptime"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// ProbeResponse is the JSON response for the live, ready and detailed probes.
type ProbeResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Uptime     string                `json:"uptime,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *HealthHandler) uptime() string {
	return h.now().Sub(h.startedAt).Truncate(time.Second).String()
}

// Health handles GET /api/health: 200 when the backend answers, 503 otherwise.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Backend:   h.backendName,
		Uptime:    h.uptime(),
		Version:   h.version,
		Timestamp: h.now(),
	}
	status := http.StatusOK
	if err := h.backend.Ping(ctx); err != nil {
		resp.Status = "unhealthy"
		resp.Database = "disconnected"
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Ready is the readiness probe. Pings the backend: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.backend.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ProbeResponse{
			Status:    "down",
			Timestamp: h.now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:    "ok",
		Timestamp: h.now(),
	})
}

// Detailed pings the backend with latency measurement and includes version and uptime.
func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := "ok"

	start := time.Now()
	err := h.backend.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components[h.backendName] = CompStatus{Status: "down", Error: err.Error()}
		overallStatus = "down"
	} else {
		components[h.backendName] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, ProbeResponse{
		Status:     overallStatus,
		Version:    h.version,
		Uptime:     h.uptime(),
		Components: components,
		Timestamp:  h.now(),
	})
}
