// Package repository holds the dataset snapshot behind the scoring service:
// teams, QB contracts, season results and rookie-star candidates, indexed
// for per-team lookup. The snapshot is replaced wholesale, never mutated.
package repository

import (
	"context"

	"github.com/okian/capwindow/internal/domain/model"
)

// Store provides read access to the current dataset snapshot.
type Store interface {
	// Teams returns all teams in stable id order.
	Teams(ctx context.Context) ([]model.Team, error)

	// Team returns one team by id. Returns ErrTeamNotFound if unknown and
	// ErrEmptyTeamID on a blank id.
	Team(ctx context.Context, teamID string) (model.Team, error)

	// ContractForTeam returns the QB contract on file for a team.
	// Returns ErrContractNotFound when the team has no contract.
	ContractForTeam(ctx context.Context, teamID string) (model.QBContract, error)

	// SeasonResult returns a team's season result; ok is false when the
	// team has none on file.
	SeasonResult(ctx context.Context, teamID string) (model.SeasonResult, bool)

	// RookiesForTeam returns a team's rookie-star candidates, possibly
	// empty.
	RookiesForTeam(ctx context.Context, teamID string) []model.RookieContractStar

	// Counts reports the snapshot's size as (teams, contracts, rookies).
	Counts(ctx context.Context) (int, int, int)
}

// Replacer is implemented by stores that accept a new snapshot.
type Replacer interface {
	// Replace validates the dataset and swaps it in atomically.
	Replace(ctx context.Context, ds Dataset) error
}
