package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/tessera-games/loreforge/internal/database"
	"github.com/tessera-games/loreforge/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz provides a readiness check that validates database connectivity
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (database connected)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "database connection failed",
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
