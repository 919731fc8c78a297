// Package qbvalue converts raw QB performance metrics into a dollar-value
// estimate, a 0-100 quality score, and a contract comparison. The value
// model and the quality model use separate normalizations and weights on
// purpose; they feed different consumers.
package qbvalue

import (
	"math"

	"github.com/okian/capwindow/internal/domain/model"
)

// Dollar range for the performance value mapping.
const (
	minPerformanceValue = 5_000_000.0
	maxPerformanceValue = 65_000_000.0
)

// UnprovenQualityScore is returned when metrics are absent or all-zero.
// This is a deliberate uncertainty penalty, not a computed score.
const UnprovenQualityScore = 40.0

// Contract comparison outcomes.
const (
	ComparisonSurplus = "surplus"
	ComparisonFair    = "fair"
	ComparisonOverpay = "overpay"
)

// Value tier thresholds, best first.
var valueTiers = []struct {
	floor float64
	tier  string
}{
	{60_000_000, "Elite"},
	{50_000_000, "Pro Bowl"},
	{40_000_000, "Above Average"},
	{30_000_000, "Average"},
	{20_000_000, "Below Average"},
}

// normalize maps value from [min,max] onto [0,100], saturating at both ends.
func normalize(value, min, max float64) float64 {
	scaled := ((value - min) / (max - min)) * 100
	return math.Max(0, math.Min(100, scaled))
}

// EstimatePerformanceValue maps performance metrics to an annual dollar
// value in [$5M, $65M].
//
// Weights: EPA 35%, CPOE 15%, QBR 15%, wins 20%, playoff bonus 15%.
func EstimatePerformanceValue(metrics model.PerformanceMetrics) float64 {
	epaScore := normalize(metrics.EPAPerPlay, -0.1, 0.3)
	cpoeScore := normalize(metrics.CPOE, -5, 8)
	qbrScore := normalize(metrics.QBR, 30, 80)
	winScore := normalize(float64(metrics.Wins), 3, 14)
	playoffScore := math.Min(100, float64(metrics.PlayoffWins)*25)

	composite := epaScore*0.35 +
		cpoeScore*0.15 +
		qbrScore*0.15 +
		winScore*0.20 +
		playoffScore*0.15

	return math.Round(minPerformanceValue + (composite/100)*(maxPerformanceValue-minPerformanceValue))
}

// QualityScore maps performance metrics to a 0-100 quality composite used
// as the engine's quality sub-score. Absent or all-zero metrics return the
// fixed unproven score of 40.
//
// Weights: EPA 30%, PFF 30%, QBR 25%, CPOE 15%.
func QualityScore(metrics *model.PerformanceMetrics) float64 {
	if metrics.IsUnproven() {
		return UnprovenQualityScore
	}

	epaScore := math.Max(0, math.Min(100, (metrics.EPAPerPlay+0.2)*200))
	cpoeScore := math.Max(0, math.Min(100, (metrics.CPOE+5)*9.1))
	qbrScore := math.Max(0, math.Min(100, (metrics.QBR-30)*1.82))
	pffScore := math.Max(0, math.Min(100, (metrics.PFFGrade-50)*2.22))

	quality := epaScore*0.30 +
		pffScore*0.30 +
		qbrScore*0.25 +
		cpoeScore*0.15

	return math.Round(quality*10) / 10
}

// SurplusValue is performance value minus actual cap hit.
func SurplusValue(performanceValue, actualCapHit float64) float64 {
	return performanceValue - actualCapHit
}

// Tier labels a performance value.
func Tier(performanceValue float64) string {
	for _, t := range valueTiers {
		if performanceValue >= t.floor {
			return t.tier
		}
	}
	return "Replacement"
}

// CompareValueToContract classifies the contract by percentage deviation of
// performance value from cap hit: above +20% is surplus, below -20% is
// overpay, anything between is fair.
func CompareValueToContract(performanceValue, actualCapHit float64) string {
	surplusPercent := ((performanceValue - actualCapHit) / actualCapHit) * 100

	switch {
	case surplusPercent > 20:
		return ComparisonSurplus
	case surplusPercent < -20:
		return ComparisonOverpay
	default:
		return ComparisonFair
	}
}
