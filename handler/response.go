package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorResponse represents error response data.
type errorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// writeJSON marshals body and writes it with the given status code.
func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		log.Error("failed to marshal response", zap.Error(err))
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if _, err := w.Write(data); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}

// writeError writes an error response with the given status code.
func writeError(w http.ResponseWriter, log *zap.Logger, status int, message string, details ...string) {
	writeJSON(w, log, status, struct {
		Error errorResponse `json:"error"`
	}{
		Error: errorResponse{
			Message: message,
			Details: details,
		},
	})
}
