// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/capwindow/internal/app"
	"github.com/okian/capwindow/internal/adapters/repository"
	"github.com/okian/capwindow/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Rankings returns every scored team, best window first.
	Rankings(ctx context.Context) ([]model.TeamWindowScore, error)

	// Per-team readouts.
	TeamDetail(ctx context.Context, teamID string) (TeamDetail, error)
	TeamTrajectory(ctx context.Context, teamID string, horizonYears int) (TrajectoryReport, error)

	// League-wide views.
	Alerts(ctx context.Context) ([]model.WindowAlert, error)
	ZoneBreakdown(ctx context.Context) ([]ZoneCount, error)
}

// TeamDetail mirrors the read shape returned by team detail queries.
type TeamDetail = service.TeamDetail

// TrajectoryReport mirrors the read shape returned by trajectory queries.
type TrajectoryReport = service.TrajectoryReport

// ZoneCount mirrors the read shape returned by zone breakdown queries.
type ZoneCount = service.ZoneCount

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	rankingsHandler *RankingsHandler
	teamsHandler    *TeamsHandler
	alertsHandler   *AlertsHandler
	zonesHandler    *ZonesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxRankingLimit int) *Server {
	return &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		rankingsHandler: NewRankingsHandler(deps, maxRankingLimit),
		teamsHandler:    NewTeamsHandler(deps),
		alertsHandler:   NewAlertsHandler(deps),
		zonesHandler:    NewZonesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("/teams/", MetricsMiddleware(s.teamsHandler.HandleGetTeam, "teams"))
	mux.HandleFunc("/alerts", MetricsMiddleware(s.alertsHandler.HandleGetAlerts, "alerts"))
	mux.HandleFunc("/zones", MetricsMiddleware(s.zonesHandler.HandleGetZones, "zones"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates repository lookup failures to 404s.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrTeamNotFound) ||
		errors.Is(err, repository.ErrContractNotFound)
}
