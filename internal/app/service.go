// Package service provides the core business service that implements
// the dependencies required by the HTTP API. It owns the dataset snapshot,
// runs the scoring pass over all teams and exposes the ranked results,
// per-team details and the alert feed.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/okian/capwindow/internal/adapters/repository"
	"github.com/okian/capwindow/internal/domain/league"
	"github.com/okian/capwindow/internal/domain/model"
	"github.com/okian/capwindow/internal/domain/ranking"
	"github.com/okian/capwindow/internal/domain/surplus"
	"github.com/okian/capwindow/internal/domain/trajectory"
	"github.com/okian/capwindow/internal/domain/window"
	"github.com/okian/capwindow/pkg/logger"
	"github.com/okian/capwindow/pkg/metrics"
)

// Service computes championship-window scores over the dataset snapshot.
// Every read triggers a fresh scoring pass; the service holds no score
// cache and no invalidation logic.
type Service struct {
	mu sync.RWMutex

	store repository.Store

	windowEngine *window.Engine
	alertEngine  *ranking.AlertEngine

	params      league.Params
	rules       ranking.Ruleset
	workerCount int
	datasetPath string
	now         func() time.Time

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore overrides the dataset store. The default is an in-memory
// snapshot store filled from the dataset path or the embedded default.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithWorkerCount bounds the per-team scoring fan-out.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithDatasetPath points Start at a dataset JSON file instead of the
// embedded default.
func WithDatasetPath(path string) Option {
	return func(s *Service) {
		s.datasetPath = path
	}
}

// WithLeagueParams sets the cap-model parameters.
func WithLeagueParams(params league.Params) Option {
	return func(s *Service) {
		s.params = params
	}
}

// WithRuleset sets the alert allow-list ruleset.
func WithRuleset(rules ranking.Ruleset) Option {
	return func(s *Service) {
		s.rules = rules
	}
}

// WithClock overrides the timestamp source for computed scores and alerts.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(lg logger.Logger) Option {
	return func(s *Service) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		params:      league.NewParams(),
		rules:       ranking.DefaultRuleset(),
		workerCount: runtime.NumCPU(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start loads the dataset and builds the scoring engines.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting window scoring service...")

	if s.store == nil {
		store := repository.NewSnapshotStore()
		ds, err := s.loadDataset()
		if err != nil {
			return err
		}
		if err := store.Replace(ctx, ds); err != nil {
			return fmt.Errorf("install dataset: %w", err)
		}
		s.store = store
	}

	s.windowEngine = window.New(
		window.WithParams(s.params),
		window.WithClock(s.now),
	)
	s.alertEngine = ranking.NewAlertEngine(
		ranking.WithParams(s.params),
		ranking.WithRuleset(s.rules),
		ranking.WithClock(s.now),
	)

	teams, contracts, rookies := s.store.Counts(ctx)
	s.started = true
	s.logger.Info(ctx, "window scoring service started",
		logger.Int("teams", teams),
		logger.Int("contracts", contracts),
		logger.Int("rookies", rookies),
		logger.Int("workers", s.workerCount),
		logger.Int("currentYear", s.params.CurrentYear),
	)
	return nil
}

func (s *Service) loadDataset() (repository.Dataset, error) {
	if s.datasetPath != "" {
		ds, err := repository.LoadDatasetFile(s.datasetPath)
		if err != nil {
			return repository.Dataset{}, err
		}
		return ds, nil
	}
	return repository.DefaultDataset()
}

// Stop shuts the service down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "window scoring service stopped")
}

// Rankings runs a full scoring pass and returns teams ordered best to
// worst. Teams without a QB contract on file are skipped. Scoring fans
// out over a bounded worker set; the final sort imposes the order.
func (s *Service) Rankings(ctx context.Context) ([]model.TeamWindowScore, error) {
	start := time.Now()

	teams, err := s.store.Teams(ctx)
	if err != nil {
		metrics.RecordScoringError()
		return nil, fmt.Errorf("load teams: %w", err)
	}

	scores := make([]model.TeamWindowScore, len(teams))
	scored := make([]bool, len(teams))

	sem := make(chan struct{}, s.workerCount)
	var wg sync.WaitGroup
	for i, team := range teams {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, team model.Team) {
			defer wg.Done()
			defer func() { <-sem }()

			score, ok := s.scoreTeam(ctx, team)
			if ok {
				scores[i] = score
				scored[i] = true
			}
		}(i, team)
	}
	wg.Wait()

	out := make([]model.TeamWindowScore, 0, len(teams))
	for i := range scores {
		if scored[i] {
			out = append(out, scores[i])
		}
	}

	metrics.RecordScoringPass(float64(time.Since(start).Milliseconds()))
	metrics.UpdateTeamsScored(len(out))

	return ranking.Sort(out), nil
}

// scoreTeam computes one team's score. Missing contracts skip the team;
// missing season results and rookies degrade to defaults.
func (s *Service) scoreTeam(ctx context.Context, team model.Team) (model.TeamWindowScore, bool) {
	contract, err := s.store.ContractForTeam(ctx, team.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrContractNotFound) {
			metrics.RecordScoringError()
			s.logger.Warn(ctx, "contract lookup failed",
				logger.String("teamID", team.ID),
				logger.Error(err),
			)
		}
		return model.TeamWindowScore{}, false
	}

	rookies := s.store.RookiesForTeam(ctx, team.ID)
	surplusResult := surplus.Aggregate(s.params, rookies)

	var season *model.SeasonResult
	if result, ok := s.store.SeasonResult(ctx, team.ID); ok {
		season = &result
	}

	score := s.windowEngine.ComputeScore(team, contract, surplusResult, qbAge(contract.PlayerID), season)
	return score, true
}

// TeamScore scores a single team.
func (s *Service) TeamScore(ctx context.Context, teamID string) (model.TeamWindowScore, error) {
	team, err := s.store.Team(ctx, teamID)
	if err != nil {
		return model.TeamWindowScore{}, err
	}

	score, ok := s.scoreTeam(ctx, team)
	if !ok {
		return model.TeamWindowScore{}, repository.ErrContractNotFound
	}
	return score, nil
}

// TeamDetail is the full per-team readout for one scoring pass.
type TeamDetail struct {
	Team                  model.Team               `json:"team"`
	Score                 model.TeamWindowScore    `json:"score"`
	Surplus               model.NonQBSurplusResult `json:"surplus"`
	EffectiveCost         surplus.EffectiveCost    `json:"effective_cost"`
	Flexibility           trajectory.Flexibility   `json:"flexibility"`
	SustainabilityWarning string                   `json:"sustainability_warning,omitempty"`
}

// TeamDetail assembles the score, surplus accounting, effective cost and
// restructure flexibility for one team.
func (s *Service) TeamDetail(ctx context.Context, teamID string) (TeamDetail, error) {
	team, err := s.store.Team(ctx, teamID)
	if err != nil {
		return TeamDetail{}, err
	}
	contract, err := s.store.ContractForTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, err
	}

	score, _ := s.scoreTeam(ctx, team)
	surplusResult := surplus.Aggregate(s.params, s.store.RookiesForTeam(ctx, teamID))

	return TeamDetail{
		Team:                  team,
		Score:                 score,
		Surplus:               surplusResult,
		EffectiveCost:         surplus.AdjustedEffectiveCost(score.QBCapHitPercent, surplusResult),
		Flexibility:           trajectory.AssessFlexibility(s.params, contract),
		SustainabilityWarning: surplus.SustainabilityWarning(s.params, surplusResult),
	}, nil
}

// TrajectoryReport is the charting payload for one team's contract.
type TrajectoryReport struct {
	TeamID              string                     `json:"team_id"`
	PlayerName          string                     `json:"player_name"`
	Points              []model.CapProjectionPoint `json:"points"`
	ThresholdCrossYear  int                        `json:"threshold_cross_year,omitempty"`
	YearsUntilThreshold int                        `json:"years_until_threshold"`
	Peak                trajectory.Peak            `json:"peak"`
	TrendSlope          float64                    `json:"trend_slope"`
	DirectionScore      float64                    `json:"direction_score"`
	Flexibility         trajectory.Flexibility     `json:"flexibility"`
	Narrative           string                     `json:"narrative"`
}

// TeamTrajectory projects a team's contract over the horizon.
func (s *Service) TeamTrajectory(ctx context.Context, teamID string, horizonYears int) (TrajectoryReport, error) {
	if _, err := s.store.Team(ctx, teamID); err != nil {
		return TrajectoryReport{}, err
	}
	contract, err := s.store.ContractForTeam(ctx, teamID)
	if err != nil {
		return TrajectoryReport{}, err
	}

	currentPercent := 0.0
	if hit, ok := contract.CapHitForYear(s.params.CurrentYear); ok {
		currentPercent = s.params.CapHitPercent(hit.Amount, s.params.CurrentYear)
	}

	return TrajectoryReport{
		TeamID:              teamID,
		PlayerName:          contract.PlayerName,
		Points:              trajectory.ProjectSeries(s.params, contract, horizonYears),
		ThresholdCrossYear:  trajectory.FindThresholdCrossYear(s.params, contract, league.DangerThreshold),
		YearsUntilThreshold: trajectory.YearsUntilThreshold(s.params, contract, league.DangerThreshold),
		Peak:                trajectory.PeakCapHit(s.params, contract),
		TrendSlope:          trajectory.TrendSlope(s.params, contract),
		DirectionScore:      trajectory.DirectionScore(s.params, contract),
		Flexibility:         trajectory.AssessFlexibility(s.params, contract),
		Narrative:           trajectory.Describe(s.params, contract, currentPercent),
	}, nil
}

// Alerts runs a scoring pass and derives the capped alert feed.
func (s *Service) Alerts(ctx context.Context) ([]model.WindowAlert, error) {
	scores, err := s.Rankings(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]ranking.Entry, 0, len(scores))
	for _, score := range scores {
		contract, err := s.store.ContractForTeam(ctx, score.TeamID)
		if err != nil {
			continue
		}
		entries = append(entries, ranking.Entry{Score: score, Contract: contract})
	}

	alerts := s.alertEngine.Generate(entries)
	metrics.UpdateAlertsGenerated(len(alerts))
	return alerts, nil
}

// ZoneCount is one zone's slice of the league.
type ZoneCount struct {
	Zone  model.WindowZone `json:"zone"`
	Teams []string         `json:"teams"`
	Count int              `json:"count"`
}

// ZoneBreakdown groups ranked teams by window zone, best zone first.
func (s *Service) ZoneBreakdown(ctx context.Context) ([]ZoneCount, error) {
	scores, err := s.Rankings(ctx)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, 5)
	byZone := make(map[string]*ZoneCount, 5)
	for _, score := range scores {
		name := score.WindowZone.Zone
		zc, ok := byZone[name]
		if !ok {
			zc = &ZoneCount{Zone: score.WindowZone}
			byZone[name] = zc
			order = append(order, name)
		}
		zc.Teams = append(zc.Teams, score.TeamID)
		zc.Count++
	}

	out := make([]ZoneCount, 0, len(order))
	for _, name := range order {
		out = append(out, *byZone[name])
	}
	return out, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"currentYear": s.params.CurrentYear,
		"currentCap":  s.params.CurrentCap,
	}

	if s.started {
		teams, contracts, rookies := s.store.Counts(context.Background())
		stats["teams"] = teams
		stats["contracts"] = contracts
		stats["rookies"] = rookies
	}

	return stats
}
