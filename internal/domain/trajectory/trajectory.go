// Package trajectory projects a contract's cap-hit percentage across future
// years: threshold crossings, peak burden, trend slope, and what-if
// restructure simulations. All functions are pure; simulations return new
// contract values and never mutate the input.
package trajectory

import (
	"fmt"
	"math"

	"github.com/okian/capwindow/internal/domain/league"
	"github.com/okian/capwindow/internal/domain/model"
)

// Projection and restructure defaults.
const (
	// DefaultHorizonYears is how many seasons ProjectSeries covers.
	DefaultHorizonYears = 6

	// DefaultProrationYears spreads a restructured bonus across this many
	// contract years.
	DefaultProrationYears = 5

	// trendWindowYears is the projection window for the trend slope.
	trendWindowYears = 4

	// minBaseSalary is the reserved veteran-minimum salary that cannot be
	// converted in a restructure.
	minBaseSalary = 1_500_000.0

	// significantRoomThreshold separates a significant restructure from a
	// limited one.
	significantRoomThreshold = 20_000_000.0

	// maxYearsUntilThreshold caps the years-until-threshold count.
	maxYearsUntilThreshold = 5
)

// ProjectSeries emits one point per year from the current year through the
// horizon. Void years carry the dead-money amount at zero percent to show
// risk rather than cap consumption; years with no record are skipped.
func ProjectSeries(params league.Params, contract model.QBContract, horizonYears int) []model.CapProjectionPoint {
	if horizonYears <= 0 {
		horizonYears = DefaultHorizonYears
	}

	points := make([]model.CapProjectionPoint, 0, horizonYears)
	for i := 0; i < horizonYears; i++ {
		year := params.CurrentYear + i
		hit, ok := contract.CapHitForYear(year)
		if !ok {
			continue
		}

		projectedCap := params.ProjectCap(year)
		if hit.IsVoidYear {
			points = append(points, model.CapProjectionPoint{
				Year:         year,
				Amount:       hit.DeadMoneyIfCut,
				ProjectedCap: projectedCap,
				IsProjected:  true,
			})
			continue
		}

		percent := (hit.Amount / projectedCap) * 100
		points = append(points, model.CapProjectionPoint{
			Year:          year,
			CapHitPercent: math.Round(percent*100) / 100,
			Amount:        hit.Amount,
			ProjectedCap:  projectedCap,
			IsProjected:   year > params.CurrentYear,
		})
	}

	return points
}

// FindThresholdCrossYear scans non-void cap-hit years from the current year
// forward and returns the first year whose projected percentage reaches the
// threshold, or 0 when no crossing exists within the contract's known years.
func FindThresholdCrossYear(params league.Params, contract model.QBContract, threshold float64) int {
	for _, hit := range contract.CapHits {
		if hit.Year < params.CurrentYear || hit.IsVoidYear {
			continue
		}
		if params.CapHitPercent(hit.Amount, hit.Year) >= threshold {
			return hit.Year
		}
	}
	return 0
}

// YearsUntilThreshold counts non-void contract years strictly before the
// threshold is met, capped at 5. Zero means the current year is already at
// or over the threshold.
func YearsUntilThreshold(params league.Params, contract model.QBContract, threshold float64) int {
	years := 0
	for _, hit := range contract.CapHits {
		if hit.Year < params.CurrentYear || hit.IsVoidYear {
			continue
		}
		if params.CapHitPercent(hit.Amount, hit.Year) >= threshold {
			return years
		}
		years++
	}

	if years > maxYearsUntilThreshold {
		return maxYearsUntilThreshold
	}
	return years
}

// Peak is the worst-case projected cap hit across a contract.
type Peak struct {
	Year    int     `json:"year"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

// PeakCapHit returns the maximum projected percentage across all non-void
// years from the current year onward.
func PeakCapHit(params league.Params, contract model.QBContract) Peak {
	peak := Peak{Year: params.CurrentYear}

	for _, hit := range contract.CapHits {
		if hit.IsVoidYear || hit.Year < params.CurrentYear {
			continue
		}

		percent := params.CapHitPercent(hit.Amount, hit.Year)
		if percent > peak.Percent {
			peak = Peak{
				Year:    hit.Year,
				Amount:  hit.Amount,
				Percent: math.Round(percent*100) / 100,
			}
		}
	}

	return peak
}

// TrendSlope fits an ordinary least-squares line to percent-of-cap against
// year index over a 4-year projected window. A positive slope means the cap
// burden is increasing.
func TrendSlope(params league.Params, contract model.QBContract) float64 {
	points := ProjectSeries(params, contract, trendWindowYears)
	n := len(points)
	if n < 2 {
		return 0
	}

	var sumX, sumY, sumXY, sumXX float64
	for i, p := range points {
		x := float64(i)
		sumX += x
		sumY += p.CapHitPercent
		sumXY += x * p.CapHitPercent
		sumXX += x * x
	}

	slope := (float64(n)*sumXY - sumX*sumY) / (float64(n)*sumXX - sumX*sumX)
	return math.Round(slope*100) / 100
}

// DirectionScore grades the year-over-year cap-hit change: 90 improving,
// down to 15 for a cap cliff. Returns 0 when the current-year hit is 0.
func DirectionScore(params league.Params, contract model.QBContract) float64 {
	current, _ := contract.CapHitForYear(params.CurrentYear)
	next, _ := contract.CapHitForYear(params.CurrentYear + 1)

	if current.Amount == 0 {
		return 0
	}

	increase := ((next.Amount - current.Amount) / current.Amount) * 100
	switch {
	case increase < 0:
		return 90
	case increase < 20:
		return 70
	case increase < 50:
		return 50
	case increase < 100:
		return 30
	default:
		return 15
	}
}

// SimulateRestructure converts amountToConvert of the current year's base
// salary into a signing bonus prorated evenly across yearsToProrate contract
// years starting at the current year. The returned contract is an
// independent copy.
func SimulateRestructure(params league.Params, contract model.QBContract, amountToConvert float64, yearsToProrate int) model.QBContract {
	if yearsToProrate <= 0 {
		yearsToProrate = DefaultProrationYears
	}

	out := contract.Clone()

	currentIdx := -1
	for i, hit := range out.CapHits {
		if hit.Year == params.CurrentYear {
			currentIdx = i
			break
		}
	}
	if currentIdx == -1 {
		return out
	}

	perYearBonus := amountToConvert / float64(yearsToProrate)

	out.CapHits[currentIdx].Amount -= amountToConvert
	out.CapHits[currentIdx].BaseSalary -= amountToConvert

	for i := 0; i < yearsToProrate; i++ {
		targetIdx := currentIdx + i
		if targetIdx >= len(out.CapHits) {
			break
		}
		out.CapHits[targetIdx].Amount += perYearBonus
		out.CapHits[targetIdx].SigningBonus += perYearBonus
	}

	return out
}

// Flexibility summarizes how much restructure room a contract has.
type Flexibility struct {
	HasRestructureRoom   bool    `json:"has_restructure_room"`
	MaxRestructureAmount float64 `json:"max_restructure_amount"`
	Recommendation       string  `json:"recommendation"`
}

// AssessFlexibility computes available restructure room: current-year base
// salary minus the reserved veteran minimum.
func AssessFlexibility(params league.Params, contract model.QBContract) Flexibility {
	hit, ok := contract.CapHitForYear(params.CurrentYear)
	if !ok {
		return Flexibility{
			Recommendation: "No current year cap hit data available.",
		}
	}

	maxRestructure := math.Max(0, hit.BaseSalary-minBaseSalary)
	hasRoom := hit.BaseSalary > minBaseSalary

	var recommendation string
	switch {
	case !hasRoom:
		recommendation = "No restructure room. Base salary already at minimum."
	case maxRestructure > significantRoomThreshold:
		recommendation = fmt.Sprintf(
			"Significant restructure room ($%.1fM). Could create short-term relief but pushes cap burden to future years.",
			maxRestructure/1_000_000,
		)
	default:
		recommendation = fmt.Sprintf(
			"Limited restructure room ($%.1fM). Minor relief possible.",
			maxRestructure/1_000_000,
		)
	}

	return Flexibility{
		HasRestructureRoom:   hasRoom,
		MaxRestructureAmount: maxRestructure,
		Recommendation:       recommendation,
	}
}

// Describe renders a short narrative for a contract's trajectory from the
// current percent, trend and threshold-cross year.
func Describe(params league.Params, contract model.QBContract, currentCapHitPercent float64) string {
	trend := TrendSlope(params, contract)
	crossYear := FindThresholdCrossYear(params, contract, league.DangerThreshold)

	if currentCapHitPercent < 6 {
		if crossYear > 0 {
			yearsUntil := crossYear - params.CurrentYear
			return fmt.Sprintf(
				"Elite territory now. Crosses %.0f%% threshold in %d %s (%d).",
				league.DangerThreshold, yearsUntil, pluralYears(yearsUntil), crossYear,
			)
		}
		return "Elite territory. No threshold crossing projected through contract."
	}

	if currentCapHitPercent >= league.DangerThreshold {
		if trend > 1 {
			return fmt.Sprintf(
				"Already past %.0f%% threshold and cap hit still climbing. Window closed.",
				league.DangerThreshold,
			)
		}
		return fmt.Sprintf(
			"Already past %.0f%% threshold. Would need restructure to create flexibility.",
			league.DangerThreshold,
		)
	}

	if crossYear > 0 {
		yearsUntil := crossYear - params.CurrentYear
		if yearsUntil <= 1 {
			return fmt.Sprintf(
				"Crosses %.0f%% threshold next year. Window closing rapidly.",
				league.DangerThreshold,
			)
		}
		return fmt.Sprintf(
			"%d years until %.0f%% threshold (%d). Moderate runway.",
			yearsUntil, league.DangerThreshold, crossYear,
		)
	}

	return "Cap hit remains manageable through contract."
}

func pluralYears(n int) string {
	if n > 1 {
		return "years"
	}
	return "year"
}
