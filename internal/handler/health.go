package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/feybrew/cauldron/internal/database"
	"github.com/feybrew/cauldron/internal/logger"
)

// readyzPingTimeout caps how long the readiness probe waits on the pool.
const readyzPingTimeout = 2 * time.Second

// ProbeResponse is the body of both health probes. Checks carries a
// per-dependency verdict; liveness has none.
type ProbeResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleHealthz reports process liveness. No dependencies are consulted; it
// answers as long as the HTTP server is serving.
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} ProbeResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, ProbeResponse{Status: "ok"})
	}
}

// HandleReadyz reports whether the service can take traffic, which here means
// the database pool answers a ping within readyzPingTimeout.
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} ProbeResponse
// @Failure 503 {object} ProbeResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyzPingTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness probe failed", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, ProbeResponse{
				Status: "unavailable",
				Checks: map[string]string{"database": "unreachable"},
			})
			return
		}

		respondJSON(w, http.StatusOK, ProbeResponse{
			Status: "ok",
			Checks: map[string]string{"database": "ok"},
		})
	}
}
