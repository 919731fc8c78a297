// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/capwindow/internal/domain/model"
)

// RankingsDependencies defines the interface for ranking operations.
type RankingsDependencies interface {
	Rankings(ctx context.Context) ([]model.TeamWindowScore, error)
}

// RankingsHandler handles ranking requests.
type RankingsHandler struct {
	deps     RankingsDependencies
	maxLimit int
}

// NewRankingsHandler creates a new rankings handler.
func NewRankingsHandler(deps RankingsDependencies, maxLimit int) *RankingsHandler {
	return &RankingsHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetRankings handles GET /rankings?limit=N requests. The limit is
// optional; when present it must be between 1 and the configured maximum.
func (h *RankingsHandler) HandleGetRankings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := h.maxLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if parsed > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", ErrLimitExceeded)
			return
		}
		n = parsed
	}
	scores, err := h.deps.Rankings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	if len(scores) > n {
		scores = scores[:n]
	}
	writeJSON(w, http.StatusOK, scores)
}
