// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// ZonesDependencies defines the interface for zone breakdown operations.
type ZonesDependencies interface {
	ZoneBreakdown(ctx context.Context) ([]ZoneCount, error)
}

// ZonesHandler handles zone breakdown requests.
type ZonesHandler struct {
	deps ZonesDependencies
}

// NewZonesHandler creates a new zones handler.
func NewZonesHandler(deps ZonesDependencies) *ZonesHandler {
	return &ZonesHandler{deps: deps}
}

// HandleGetZones handles GET /zones requests.
func (h *ZonesHandler) HandleGetZones(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	zones, err := h.deps.ZoneBreakdown(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if zones == nil {
		zones = []ZoneCount{}
	}
	writeJSON(w, http.StatusOK, zones)
}
