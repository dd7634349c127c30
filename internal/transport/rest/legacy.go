package rest

import (
	"net/http"
	"time"
)

// LegacyHandler serves the status routes older dashboard builds poll.
type LegacyHandler struct {
	port int
	now  func() time.Time
}

// NewLegacyHandler creates a LegacyHandler reporting the listen port.
func NewLegacyHandler(port int) *LegacyHandler {
	return &LegacyHandler{port: port, now: time.Now}
}

// Root handles GET / exactly.
func (h *LegacyHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "energy monitor API",
		"timestamp": h.now().UTC(),
		"port":      h.port,
	})
}

// Health handles GET /api/health.
func (h *LegacyHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message":   "server running",
		"status":    "OK",
		"timestamp": h.now().UTC(),
	})
}

// Test handles GET /api/test.
func (h *LegacyHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "API working",
		"data":    "test ok",
	})
}
