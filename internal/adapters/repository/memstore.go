package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/okian/capwindow/internal/domain/model"
	"github.com/okian/capwindow/pkg/metrics"
)

// SnapshotStore is the in-memory Store implementation. A Replace swaps the
// whole indexed snapshot under a write lock; readers share a read lock, so
// a scoring pass never observes half of an old dataset and half of a new
// one.
type SnapshotStore struct {
	mu sync.RWMutex

	teams         []model.Team
	teamsByID     map[string]model.Team
	contractsByID map[string]model.QBContract
	seasonsByID   map[string]model.SeasonResult
	rookiesByID   map[string][]model.RookieContractStar
	rookieCount   int

	datasetMetrics bool
}

var _ Store = (*SnapshotStore)(nil)
var _ Replacer = (*SnapshotStore)(nil)

// NewSnapshotStore returns an empty store. Call Replace to install a
// dataset before serving reads.
func NewSnapshotStore(opts ...Option) *SnapshotStore {
	s := &SnapshotStore{
		teamsByID:      map[string]model.Team{},
		contractsByID:  map[string]model.QBContract{},
		seasonsByID:    map[string]model.SeasonResult{},
		rookiesByID:    map[string][]model.RookieContractStar{},
		datasetMetrics: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace validates ds and installs it as the current snapshot.
func (s *SnapshotStore) Replace(_ context.Context, ds Dataset) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	teams := make([]model.Team, len(ds.Teams))
	copy(teams, ds.Teams)
	sort.Slice(teams, func(i, j int) bool { return teams[i].ID < teams[j].ID })

	teamsByID := make(map[string]model.Team, len(teams))
	for _, team := range teams {
		teamsByID[team.ID] = team
	}

	contractsByID := make(map[string]model.QBContract, len(ds.QBContracts))
	for _, contract := range ds.QBContracts {
		contractsByID[contract.TeamID] = contract
	}

	seasonsByID := make(map[string]model.SeasonResult, len(ds.SeasonResults))
	for teamID, season := range ds.SeasonResults {
		seasonsByID[teamID] = season
	}

	rookiesByID := make(map[string][]model.RookieContractStar)
	for _, rookie := range ds.RookieStars {
		rookiesByID[rookie.TeamID] = append(rookiesByID[rookie.TeamID], rookie)
	}

	s.mu.Lock()
	s.teams = teams
	s.teamsByID = teamsByID
	s.contractsByID = contractsByID
	s.seasonsByID = seasonsByID
	s.rookiesByID = rookiesByID
	s.rookieCount = len(ds.RookieStars)
	s.mu.Unlock()

	if s.datasetMetrics {
		metrics.UpdateDatasetSize(len(teams), len(contractsByID), len(ds.RookieStars))
	}
	return nil
}

// Teams returns all teams ordered by id.
func (s *SnapshotStore) Teams(_ context.Context) ([]model.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Team, len(s.teams))
	copy(out, s.teams)
	return out, nil
}

// Team returns one team by id.
func (s *SnapshotStore) Team(_ context.Context, teamID string) (model.Team, error) {
	if teamID == "" {
		return model.Team{}, ErrEmptyTeamID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	team, ok := s.teamsByID[teamID]
	if !ok {
		return model.Team{}, ErrTeamNotFound
	}
	return team, nil
}

// ContractForTeam returns the QB contract on file for a team.
func (s *SnapshotStore) ContractForTeam(_ context.Context, teamID string) (model.QBContract, error) {
	if teamID == "" {
		return model.QBContract{}, ErrEmptyTeamID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	contract, ok := s.contractsByID[teamID]
	if !ok {
		return model.QBContract{}, ErrContractNotFound
	}
	return contract.Clone(), nil
}

// SeasonResult returns a team's season result when present.
func (s *SnapshotStore) SeasonResult(_ context.Context, teamID string) (model.SeasonResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	season, ok := s.seasonsByID[teamID]
	return season, ok
}

// RookiesForTeam returns a team's rookie-star candidates.
func (s *SnapshotStore) RookiesForTeam(_ context.Context, teamID string) []model.RookieContractStar {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rookies := s.rookiesByID[teamID]
	out := make([]model.RookieContractStar, len(rookies))
	copy(out, rookies)
	return out
}

// Counts reports (teams, contracts, rookies) in the snapshot.
func (s *SnapshotStore) Counts(_ context.Context) (int, int, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.teams), len(s.contractsByID), s.rookieCount
}
