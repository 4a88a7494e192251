package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/health-planner/internal/logger"
)

// Response is the uniform envelope for mutation actions.
// Transport status is always 200 OK; logical failure is signaled only through
// the success field, so callers must not infer outcome from HTTP status.
type Response struct {
	// Whether the action succeeded
	// default: true
	Success bool `json:"success"`

	// Short human-readable failure message
	// default: ""
	Message string `json:"message,omitempty"`
}

// writeJSON writes v as the JSON body of a 200 response.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeFailure writes a failure envelope with the given message.
func writeFailure(w http.ResponseWriter, message string) {
	writeJSON(w, Response{Success: false, Message: message})
}
