package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"file-converter/internal/domain"
	apperrors "file-converter/pkg/errors"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeServiceError maps a service-layer error to its HTTP status and
// writes it. Structured errors surface their message; anything else is
// reported verbatim with a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	status := apperrors.GetStatusCode(err)
	message := err.Error()

	var convErr *domain.ConversionError
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &convErr):
		message = convErr.Message
	case errors.As(err, &appErr):
		message = appErr.Message
	case errors.Is(err, domain.ErrSessionNotFound):
		status = http.StatusNotFound
		message = domain.ErrSessionNotFound.Error()
	}

	writeError(w, status, message)
}
