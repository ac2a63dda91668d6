package api

import (
	"net/http"

	"github.com/pkawa95/studytask-api/internal/api/shared"
)

// HealthHandler answers liveness probes without touching the database.
type HealthHandler struct {
	version string
}

// NewHealthHandler creates a HealthHandler reporting the given version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version}
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: h.version,
	})
}
