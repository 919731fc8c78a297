// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/capwindow/internal/domain/model"
)

// AlertsDependencies defines the interface for alert operations.
type AlertsDependencies interface {
	Alerts(ctx context.Context) ([]model.WindowAlert, error)
}

// AlertsHandler handles alert feed requests.
type AlertsHandler struct {
	deps AlertsDependencies
}

// NewAlertsHandler creates a new alerts handler.
func NewAlertsHandler(deps AlertsDependencies) *AlertsHandler {
	return &AlertsHandler{deps: deps}
}

// HandleGetAlerts handles GET /alerts requests.
func (h *AlertsHandler) HandleGetAlerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	alerts, err := h.deps.Alerts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if alerts == nil {
		alerts = []model.WindowAlert{}
	}
	writeJSON(w, http.StatusOK, alerts)
}
