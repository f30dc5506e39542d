package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tessera-games/loreforge/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Encode through a pooled buffer to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceError maps domain errors to HTTP status codes and user-facing
// messages. Internal errors collapse to a generic message.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPartNotFound):
		return http.StatusNotFound, ErrMsgPartNotFoundError
	case errors.Is(err, domain.ErrCatalogNotFound):
		return http.StatusNotFound, ErrMsgCatalogMissingError
	case errors.Is(err, domain.ErrDraftNotFound):
		return http.StatusNotFound, ErrMsgDraftNotFoundError
	case errors.Is(err, domain.ErrDraftForbidden):
		return http.StatusForbidden, ErrMsgDraftForbiddenError
	case errors.Is(err, domain.ErrInvalidKind):
		return http.StatusBadRequest, ErrMsgInvalidKindError
	case errors.Is(err, domain.ErrInvalidPayload):
		return http.StatusBadRequest, ErrMsgInvalidPayloadError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError writes a mapped service error response.
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceError(err)
	respondError(w, status, message)
}
