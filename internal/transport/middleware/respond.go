package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError sends the API error envelope. Handlers in rest use the same shape.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"success": false,
		"message": message,
	})
}
