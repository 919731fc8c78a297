// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// TeamsDependencies defines the interface for per-team read operations.
type TeamsDependencies interface {
	TeamDetail(ctx context.Context, teamID string) (TeamDetail, error)
	TeamTrajectory(ctx context.Context, teamID string, horizonYears int) (TrajectoryReport, error)
}

// TeamsHandler handles team detail and trajectory requests.
type TeamsHandler struct {
	deps TeamsDependencies
}

// NewTeamsHandler creates a new teams handler.
func NewTeamsHandler(deps TeamsDependencies) *TeamsHandler {
	return &TeamsHandler{deps: deps}
}

// HandleGetTeam handles GET /teams/{team_id} and
// GET /teams/{team_id}/trajectory?years=N requests.
func (h *TeamsHandler) HandleGetTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameters after /teams/
	path := strings.TrimPrefix(r.URL.Path, "/teams/")
	teamID, rest, _ := strings.Cut(path, "/")
	if teamID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	switch rest {
	case "":
		h.handleDetail(w, r, teamID)
	case "trajectory":
		h.handleTrajectory(w, r, teamID)
	default:
		http.NotFound(w, r)
	}
}

func (h *TeamsHandler) handleDetail(w http.ResponseWriter, r *http.Request, teamID string) {
	detail, err := h.deps.TeamDetail(r.Context(), teamID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

func (h *TeamsHandler) handleTrajectory(w http.ResponseWriter, r *http.Request, teamID string) {
	years := 0
	if yearsStr := r.URL.Query().Get("years"); yearsStr != "" {
		parsed, err := strconv.Atoi(yearsStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		years = parsed
	}
	report, err := h.deps.TeamTrajectory(r.Context(), teamID, years)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
