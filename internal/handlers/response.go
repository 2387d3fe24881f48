package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// WriteErrorDetails writes an error response carrying details: a list of
// validation messages for 400s, or the underlying failure message for 500s.
func WriteErrorDetails(w http.ResponseWriter, status int, message string, details interface{}, logger *slog.Logger) {
	WriteJSON(w, status, map[string]interface{}{
		"error":   message,
		"details": details,
	}, logger)
}
