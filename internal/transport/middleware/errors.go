package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError mirrors the REST handlers' error body so clients can read the
// message the same way for every failure.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{ //nolint:errcheck
		"error":   message,
		"message": message,
	})
}
