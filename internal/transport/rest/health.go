package rest

import (
	"context"
	"net/http"
	"time"
)

const checkTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

// brokerState reports whether the event publisher holds a broker connection.
type brokerState interface {
	IsConnected() bool
}

// HealthHandler serves the liveness, readiness and full health checks.
type HealthHandler struct {
	db      dbPinger
	broker  brokerState
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, broker brokerState, version string) *HealthHandler {
	return &HealthHandler{db: db, broker: broker, version: version}
}

// Overall check states. Degraded means the service answers requests but
// events are not reaching the broker.
const (
	statusOK       = "ok"
	statusDegraded = "degraded"
	statusDown     = "down"
)

// HealthResponse is the JSON body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable. The broker is not
// consulted: readings are stored whether or not events go out.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: statusDown, Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Health reports every component. A lost database is 503; a lost broker
// only degrades the overall status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     statusOK,
		Version:    h.version,
		Components: make(map[string]CompStatus, 2),
	}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Components["database"] = CompStatus{Status: statusDown}
		resp.Status = statusDown
	} else {
		resp.Components["database"] = CompStatus{Status: statusOK, Latency: time.Since(start).String()}
	}

	if h.broker.IsConnected() {
		resp.Components["broker"] = CompStatus{Status: statusOK}
	} else {
		resp.Components["broker"] = CompStatus{Status: statusDown}
		if resp.Status == statusOK {
			resp.Status = statusDegraded
		}
	}

	code := http.StatusOK
	if resp.Status == statusDown {
		code = http.StatusServiceUnavailable
	}

	resp.Timestamp = time.Now()
	writeJSON(w, code, resp)
}
