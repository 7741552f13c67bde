// Package response writes the JSON envelope for handlers that run outside huma,
// such as the router's not-found and method-not-allowed fallbacks.
package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	domainerrors "github.com/askyourcrush/askyourcrush-server/internal/errors"
)

// EnvelopeVersion is the envelope format version sent as "v".
const EnvelopeVersion = 1

// Envelope is the error body written by the fallbacks.
type Envelope struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// NotFound writes a 404 Not Found response.
func NotFound(w http.ResponseWriter, message string, logger *slog.Logger) {
	writeError(w, http.StatusNotFound, domainerrors.CodeNotFound, message, logger)
}

// MethodNotAllowed writes a 405 Method Not Allowed response.
func MethodNotAllowed(w http.ResponseWriter, message string, logger *slog.Logger) {
	writeError(w, http.StatusMethodNotAllowed, domainerrors.CodeValidation, message, logger)
}

func writeError(w http.ResponseWriter, status int, code domainerrors.Code, message string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	envelope := Envelope{
		V:       EnvelopeVersion,
		Success: false,
		Error:   message,
		Code:    string(code),
	}
	if err := json.NewEncoder(w).Encode(envelope); err != nil && logger != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}
