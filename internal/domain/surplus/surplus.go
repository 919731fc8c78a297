// Package surplus estimates the market value of non-QB players on rookie
// contracts and aggregates team-level surplus value. This is the accounting
// that explains how a team can stay competitive despite an expensive QB.
package surplus

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/okian/capwindow/internal/domain/league"
	"github.com/okian/capwindow/internal/domain/model"
)

// Aggregation constants.
const (
	// SignificanceThreshold is the minimum per-player surplus counted
	// toward the team total.
	SignificanceThreshold = 5_000_000.0

	// defaultMarketValue is the flat estimate for unknown positions.
	defaultMarketValue = 8_000_000.0

	// surplusCreditRate is the share of surplus-as-percent-of-cap credited
	// against the raw QB cap-hit percentage.
	surplusCreditRate = 0.5

	// warningFloor is the minimum total surplus worth warning about.
	warningFloor = 20_000_000.0
)

// Benchmark holds the three-tier market values for one position.
type Benchmark struct {
	Elite   float64
	Good    float64
	Average float64
}

// benchmarks are static per-position market values. The table is data, not
// branching logic; tiers are selected by PFF grade thresholds.
var benchmarks = map[string]Benchmark{
	"WR1":  {Elite: 35_000_000, Good: 25_000_000, Average: 15_000_000},
	"WR":   {Elite: 28_000_000, Good: 18_000_000, Average: 10_000_000},
	"EDGE": {Elite: 30_000_000, Good: 22_000_000, Average: 14_000_000},
	"CB":   {Elite: 22_000_000, Good: 16_000_000, Average: 10_000_000},
	"DT":   {Elite: 22_000_000, Good: 15_000_000, Average: 10_000_000},
	"OT":   {Elite: 25_000_000, Good: 18_000_000, Average: 12_000_000},
	"OG":   {Elite: 18_000_000, Good: 12_000_000, Average: 8_000_000},
	"C":    {Elite: 16_000_000, Good: 11_000_000, Average: 7_000_000},
	"RB":   {Elite: 14_000_000, Good: 10_000_000, Average: 6_000_000},
	"LB":   {Elite: 18_000_000, Good: 12_000_000, Average: 7_000_000},
	"S":    {Elite: 16_000_000, Good: 11_000_000, Average: 7_000_000},
	"TE":   {Elite: 15_000_000, Good: 10_000_000, Average: 6_000_000},
}

// EstimateMarketValue looks up the positional benchmark and selects a tier
// by grade: >=85 elite, >=75 good, >=65 average, else half the average.
// Unknown positions get a flat default.
func EstimateMarketValue(position string, pffGrade float64) float64 {
	b, ok := benchmarks[position]
	if !ok {
		return defaultMarketValue
	}

	switch {
	case pffGrade >= 85:
		return b.Elite
	case pffGrade >= 75:
		return b.Good
	case pffGrade >= 65:
		return b.Average
	default:
		return math.Round(b.Average * 0.5)
	}
}

// ExtensionEligibleYear returns the season a draft pick can first sign an
// extension: round 1 picks after year four, everyone else after year three.
func ExtensionEligibleYear(draftYear, draftRound int) int {
	if draftRound == 1 {
		return draftYear + 4
	}
	return draftYear + 3
}

// sustainabilityYears is the horizon until the median qualifying player
// becomes extension eligible (lower-middle element on even counts).
func sustainabilityYears(players []model.RookieContractStar, currentYear int) int {
	if len(players) == 0 {
		return 0
	}

	years := make([]int, len(players))
	for i, p := range players {
		years[i] = p.ExtensionEligibleYear
	}
	sort.Ints(years)

	// Lower-middle element on even counts.
	median := years[(len(years)-1)/2]
	if median < currentYear {
		return 0
	}
	return median - currentYear
}

// Aggregate computes the team's non-QB surplus result: per-player surplus
// versus estimated market value, filtered by the significance threshold,
// with qualifying players sorted by surplus descending.
func Aggregate(params league.Params, players []model.RookieContractStar) model.NonQBSurplusResult {
	var totalSurplus float64
	qualifying := make([]model.RookieContractStar, 0, len(players))

	for _, p := range players {
		marketValue := EstimateMarketValue(p.Position, p.PFFGrade)
		surplusValue := marketValue - p.CurrentYearCapHit

		if surplusValue > SignificanceThreshold {
			totalSurplus += surplusValue
			p.EstimatedMarketValue = marketValue
			p.SurplusValue = surplusValue
			qualifying = append(qualifying, p)
		}
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].SurplusValue > qualifying[j].SurplusValue
	})

	percentOfCap := (totalSurplus / params.CurrentCap) * 100

	return model.NonQBSurplusResult{
		TotalSurplus:          totalSurplus,
		StarRookies:           qualifying,
		SustainabilityYears:   sustainabilityYears(qualifying, params.CurrentYear),
		SurplusAsPercentOfCap: math.Round(percentOfCap*10) / 10,
	}
}

// EffectiveCost is the QB cap-hit percentage adjusted for non-QB surplus.
type EffectiveCost struct {
	RawQBCapHitPercent float64 `json:"raw_qb_cap_hit_percent"`
	EffectiveQBCost    float64 `json:"effective_qb_cost"`
	SurplusOffset      float64 `json:"surplus_offset"`
	Explanation        string  `json:"explanation"`
}

// AdjustedEffectiveCost grants 50% credit of the surplus-as-percent-of-cap
// against the raw QB percentage, floored at zero, with a templated
// explanation including a sustainability warning when the horizon is short.
func AdjustedEffectiveCost(qbCapHitPercent float64, result model.NonQBSurplusResult) EffectiveCost {
	offset := result.SurplusAsPercentOfCap * surplusCreditRate
	effective := math.Max(0, qbCapHitPercent-offset)

	var explanation string
	if offset > 5 {
		explanation = fmt.Sprintf(
			"QB at %.1f%% but %d rookie stars provide $%.0fM in surplus value. Effective QB cost: %.1f%%. ",
			qbCapHitPercent, len(result.StarRookies), result.TotalSurplus/1_000_000, effective,
		)
		if result.SustainabilityYears <= 2 {
			explanation += fmt.Sprintf(
				"Warning: Window closes in ~%d years when extensions come due.",
				result.SustainabilityYears,
			)
		}
	} else {
		explanation = fmt.Sprintf("QB at %.1f%% cap hit. Limited non-QB surplus value.", qbCapHitPercent)
	}

	return EffectiveCost{
		RawQBCapHitPercent: qbCapHitPercent,
		EffectiveQBCost:    math.Round(effective*10) / 10,
		SurplusOffset:      math.Round(offset*10) / 10,
		Explanation:        explanation,
	}
}

// SustainabilityWarning returns a warning string when a meaningful surplus
// is about to evaporate, or "" when there is nothing to flag.
func SustainabilityWarning(params league.Params, result model.NonQBSurplusResult) string {
	if result.TotalSurplus < warningFloor {
		return ""
	}

	switch {
	case result.SustainabilityYears <= 1:
		var due []string
		for _, p := range result.StarRookies {
			if p.ExtensionEligibleYear <= params.CurrentYear+1 {
				due = append(due, p.PlayerName)
			}
		}
		return fmt.Sprintf(
			"CRITICAL: $%.0fM surplus evaporates this/next year. Extensions due: %s",
			result.TotalSurplus/1_000_000, strings.Join(due, ", "),
		)
	case result.SustainabilityYears <= 2:
		return fmt.Sprintf(
			"WARNING: Non-QB surplus ($%.0fM) expires in %d years. Window is NOW.",
			result.TotalSurplus/1_000_000, result.SustainabilityYears,
		)
	default:
		return ""
	}
}
