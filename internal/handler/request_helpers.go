package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tessera-games/loreforge/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and
// writes the error response itself on failure. If it returns a non-nil error
// the handler should return without writing anything further.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("%s request validation failed", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves a required query parameter. If missing it writes
// the error response and returns ok=false.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam retrieves an optional query parameter, falling back
// to defaultValue when absent.
func GetOptionalQueryParam(r *http.Request, paramName, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// getQueryFloat parses a float query parameter, falling back when absent or
// unparseable.
func getQueryFloat(r *http.Request, paramName string, defaultValue float64) float64 {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getQueryInt parses an int query parameter, falling back when absent or
// unparseable.
func getQueryInt(r *http.Request, paramName string, defaultValue int) int {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
