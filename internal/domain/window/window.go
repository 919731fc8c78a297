// Package window computes the composite championship-window score for a
// team: six informational sub-scores plus a banded overall score. The two
// layers are deliberately independent; the sub-scores feed display
// breakdowns while the overall score drives ranking and status.
package window

import (
	"math"
	"time"

	"github.com/okian/capwindow/internal/domain/league"
	"github.com/okian/capwindow/internal/domain/model"
	"github.com/okian/capwindow/internal/domain/qbvalue"
	"github.com/okian/capwindow/internal/domain/trajectory"
	"github.com/okian/capwindow/internal/domain/zone"
)

// Scoring constants.
const (
	// DefaultQBAge is assumed when the caller has no age data.
	DefaultQBAge = 27

	// surplusScoreCeiling is the surplus total that maps to a 100
	// sub-score.
	surplusScoreCeiling = 50_000_000.0

	// Default factor points when no season result is supplied.
	defaultSuccessScore    = 10.0
	defaultCoachScore      = 10.0
	defaultProductionScore = 4.0

	// maxSuccessScore caps wins plus playoff bonuses.
	maxSuccessScore = 35.0

	// Dead-money penalty bands.
	deadMoneyWarnPercent   = 5.0
	deadMoneySeverePercent = 10.0
	deadMoneyPenaltyFloor  = 0.5
)

// Engine scores teams against a fixed set of league parameters. The clock
// is injectable so computed timestamps are reproducible in tests.
type Engine struct {
	params league.Params
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithParams overrides the league parameters.
func WithParams(params league.Params) Option {
	return func(e *Engine) {
		e.params = params
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New builds an Engine with default league parameters and the wall clock.
func New(opts ...Option) *Engine {
	e := &Engine{
		params: league.NewParams(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Params exposes the engine's league parameters.
func (e *Engine) Params() league.Params {
	return e.params
}

// ComputeScore assembles the full TeamWindowScore for one team. A missing
// current-year cap-hit record degrades to amount 0 and percent 0 rather
// than failing; HasCurrentYearData records that the default applied.
func (e *Engine) ComputeScore(
	team model.Team,
	contract model.QBContract,
	surplus model.NonQBSurplusResult,
	qbAge int,
	season *model.SeasonResult,
) model.TeamWindowScore {
	if qbAge <= 0 {
		qbAge = DefaultQBAge
	}

	var capHit float64
	currentHit, hasCurrent := contract.CapHitForYear(e.params.CurrentYear)
	if hasCurrent {
		capHit = currentHit.Amount
	}
	capHitPercent := (capHit / e.params.CurrentCap) * 100

	yearsUntil := trajectory.YearsUntilThreshold(e.params, contract, league.DangerThreshold)

	overall := OverallScore(capHitPercent, yearsUntil, season)

	return model.TeamWindowScore{
		TeamID:       team.ID,
		OverallScore: overall,

		QBCapScore:          CapScore(capHitPercent),
		QBQualityScore:      qbvalue.QualityScore(contract.PerformanceMetrics),
		SurplusScore:        SurplusScore(surplus.TotalSurplus),
		TrajectoryScore:     TrajectoryScore(yearsUntil),
		SustainabilityScore: SustainabilityScore(surplus.SustainabilityYears),
		CoreScore:           CoreHealthScore(qbAge, 0),

		QBCapHitPercent:     math.Round(capHitPercent*100) / 100,
		QBCapHit:            capHit,
		SalaryCap:           e.params.CurrentCap,
		YearsUntilThreshold: yearsUntil,
		HasCurrentYearData:  hasCurrent,

		WindowZone:   zone.Classify(capHitPercent),
		WindowStatus: zone.StatusForScore(overall),

		UpdatedAt: e.now(),
	}
}

// CapScore maps cap-hit percentage linearly onto [0,100]: a free QB scores
// 100 and a 20% cap hit scores 0.
func CapScore(capHitPercent float64) float64 {
	return math.Max(0, math.Min(100, 100-capHitPercent*5))
}

// SurplusScore maps total rookie surplus onto [0,100], saturating at $50M.
func SurplusScore(totalSurplus float64) float64 {
	return math.Min(100, (totalSurplus/surplusScoreCeiling)*100)
}

// TrajectoryScore maps years until the danger threshold onto [0,100].
func TrajectoryScore(yearsUntilThreshold int) float64 {
	return math.Min(100, float64(yearsUntilThreshold)*20)
}

// SustainabilityScore maps surplus sustainability years onto [0,100].
func SustainabilityScore(sustainabilityYears int) float64 {
	return math.Min(100, float64(sustainabilityYears)*25)
}

// CoreHealthScore starts at 100 and deducts for QB age over 30 and for key
// injuries, clamped to [0,100].
func CoreHealthScore(qbAge, keyInjuries int) float64 {
	score := 100.0
	if qbAge > 30 {
		score -= float64(qbAge-30) * 5
	}
	score -= float64(keyInjuries) * 10
	return math.Max(0, math.Min(100, score))
}

// OverallScore is the five-factor banded composite: team success (max 35
// with playoff bonuses), cap-hit band (max 25), coach tier (max 20),
// window length (max 15) and QB production tier (max 10). The factors use
// point tables rather than the linear sub-score formulas so that a cheap
// QB on a losing team does not outrank a contender.
func OverallScore(capHitPercent float64, yearsUntilThreshold int, season *model.SeasonResult) float64 {
	total := successScore(season)
	total += capBandScore(capHitPercent)

	if season != nil && season.CoachTier > 0 {
		total += float64(season.CoachTier)
	} else {
		total += defaultCoachScore
	}

	total += windowLengthScore(yearsUntilThreshold)

	if season != nil && season.QBProductionTier > 0 {
		total += float64(season.QBProductionTier)
	} else {
		total += defaultProductionScore
	}

	// Success-score playoff bonuses can push the factor sum to 105; the
	// published score stays on a 0-100 scale.
	return math.Min(100, math.Round(total))
}

// Banded point tables for the overall score, ordered ascending by bound.
// Each row applies when the input is below (winBands/capBands) or at least
// (lengthBands, scanned in reverse) its bound; the first matching row wins.
var (
	winBands = []scoreBand{
		{bound: 7, points: 2},
		{bound: 8, points: 6},
		{bound: 9, points: 10},
		{bound: 10, points: 14},
		{bound: 11, points: 18},
		{bound: 12, points: 22},
		{bound: 14, points: 25},
	}
	topWinPoints = 30.0

	capBands = []scoreBand{
		{bound: 2, points: 25},
		{bound: 3, points: 23},
		{bound: 4, points: 21},
		{bound: 6, points: 18},
		{bound: 8, points: 14},
		{bound: 10, points: 10},
		{bound: 13, points: 6},
		{bound: 15, points: 3},
	}

	lengthBands = []scoreBand{
		{bound: 1, points: 5},
		{bound: 2, points: 9},
		{bound: 3, points: 12},
		{bound: 4, points: 15},
	}
	minLengthPoints = 3.0
)

type scoreBand struct {
	bound  float64
	points float64
}

func successScore(season *model.SeasonResult) float64 {
	if season == nil {
		return defaultSuccessScore
	}

	score := topWinPoints
	for _, band := range winBands {
		if float64(season.Wins) < band.bound {
			score = band.points
			break
		}
	}

	if season.MadePlayoffs {
		score += 3
	}
	score += float64(season.PlayoffWins) * 2
	if season.ConfChampionship {
		score += 5
	}
	if season.SuperBowlAppearance {
		score += 5
	}
	if season.SuperBowlWin {
		score += 10
	}

	return math.Min(maxSuccessScore, score)
}

func capBandScore(capHitPercent float64) float64 {
	for _, band := range capBands {
		if capHitPercent < band.bound {
			return band.points
		}
	}
	return 0
}

func windowLengthScore(yearsUntilThreshold int) float64 {
	for i := len(lengthBands) - 1; i >= 0; i-- {
		if float64(yearsUntilThreshold) >= lengthBands[i].bound {
			return lengthBands[i].points
		}
	}
	return minLengthPoints
}

// DeadMoneyPenalty returns a multiplier in [0.5, 1.0] punishing contracts
// that push dead money into void years: x0.9 for each void year whose dead
// money exceeds 5% of that year's projected cap, a further x0.8 when it
// exceeds 10%. projectedCaps may pre-supply caps indexed by years from the
// current year; missing entries fall back to the growth projection. The
// penalty is a standalone diagnostic and does not feed OverallScore.
func DeadMoneyPenalty(params league.Params, contract model.QBContract, projectedCaps []float64) float64 {
	penalty := 1.0

	for _, hit := range contract.CapHits {
		if !hit.IsVoidYear || hit.DeadMoneyIfCut == 0 {
			continue
		}

		yearIndex := hit.Year - params.CurrentYear
		projectedCap := params.ProjectCap(hit.Year)
		if yearIndex >= 0 && yearIndex < len(projectedCaps) && projectedCaps[yearIndex] > 0 {
			projectedCap = projectedCaps[yearIndex]
		}

		deadMoneyPercent := (hit.DeadMoneyIfCut / projectedCap) * 100
		if deadMoneyPercent > deadMoneyWarnPercent {
			penalty *= 0.9
		}
		if deadMoneyPercent > deadMoneySeverePercent {
			penalty *= 0.8
		}
	}

	return math.Max(deadMoneyPenaltyFloor, penalty)
}
