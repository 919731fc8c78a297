package surplus_test

import (
	"strings"
	"testing"

	"github.com/okian/capwindow/internal/domain/league"
	"github.com/okian/capwindow/internal/domain/model"
	"github.com/okian/capwindow/internal/domain/surplus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEstimateMarketValue(t *testing.T) {
	Convey("Given the positional benchmark table", t, func() {
		Convey("When grading a known position", func() {
			Convey("Then grade thresholds select the tier", func() {
				So(surplus.EstimateMarketValue("WR", 90), ShouldEqual, 28_000_000)
				So(surplus.EstimateMarketValue("WR", 85), ShouldEqual, 28_000_000)
				So(surplus.EstimateMarketValue("WR", 80), ShouldEqual, 18_000_000)
				So(surplus.EstimateMarketValue("WR", 70), ShouldEqual, 10_000_000)
				So(surplus.EstimateMarketValue("WR", 60), ShouldEqual, 5_000_000)
			})
		})

		Convey("When grading an unknown position", func() {
			Convey("Then a flat default applies regardless of grade", func() {
				So(surplus.EstimateMarketValue("P", 95), ShouldEqual, 8_000_000)
				So(surplus.EstimateMarketValue("K", 40), ShouldEqual, 8_000_000)
			})
		})
	})
}

func TestExtensionEligibleYear(t *testing.T) {
	Convey("Given draft slot rules", t, func() {
		Convey("Then round 1 picks are eligible after year four", func() {
			So(surplus.ExtensionEligibleYear(2023, 1), ShouldEqual, 2027)
		})

		Convey("And later rounds after year three", func() {
			So(surplus.ExtensionEligibleYear(2023, 2), ShouldEqual, 2026)
			So(surplus.ExtensionEligibleYear(2023, 7), ShouldEqual, 2026)
		})
	})
}

func TestAggregate(t *testing.T) {
	params := league.NewParams()

	Convey("Given three qualifying rookie stars", t, func() {
		// EDGE elite 30M - 1M = 29M, WR1 good 25M - 3M = 22M,
		// OT good 18M - 5M = 13M. All above the 5M threshold.
		players := []model.RookieContractStar{
			{PlayerID: "p1", PlayerName: "A", Position: "EDGE", PFFGrade: 90, CurrentYearCapHit: 1_000_000, ExtensionEligibleYear: params.CurrentYear + 2},
			{PlayerID: "p2", PlayerName: "B", Position: "WR1", PFFGrade: 80, CurrentYearCapHit: 3_000_000, ExtensionEligibleYear: params.CurrentYear + 1},
			{PlayerID: "p3", PlayerName: "C", Position: "OT", PFFGrade: 78, CurrentYearCapHit: 5_000_000, ExtensionEligibleYear: params.CurrentYear + 3},
		}

		result := surplus.Aggregate(params, players)

		Convey("Then the total matches the documented scenario", func() {
			So(result.TotalSurplus, ShouldEqual, 64_000_000)
		})

		Convey("And the sustainability horizon is the median year", func() {
			// Sorted eligible years: +1, +2, +3 -> median +2.
			So(result.SustainabilityYears, ShouldEqual, 2)
		})

		Convey("And qualifying players are sorted by surplus descending", func() {
			So(len(result.StarRookies), ShouldEqual, 3)
			So(result.StarRookies[0].PlayerID, ShouldEqual, "p1")
			So(result.StarRookies[0].SurplusValue, ShouldEqual, 29_000_000)
			So(result.StarRookies[1].SurplusValue, ShouldEqual, 22_000_000)
			So(result.StarRookies[2].SurplusValue, ShouldEqual, 13_000_000)
		})

		Convey("And surplus as percent of cap is rounded to one decimal", func() {
			// 64M / 279.2M = 22.922...% -> 22.9
			So(result.SurplusAsPercentOfCap, ShouldEqual, 22.9)
		})
	})

	Convey("Given players below the significance threshold", t, func() {
		players := []model.RookieContractStar{
			// RB average 6M - 2M = 4M, under the 5M bar.
			{PlayerID: "p1", Position: "RB", PFFGrade: 66, CurrentYearCapHit: 2_000_000, ExtensionEligibleYear: params.CurrentYear + 1},
		}

		result := surplus.Aggregate(params, players)

		Convey("Then nothing qualifies", func() {
			So(result.TotalSurplus, ShouldEqual, 0)
			So(result.StarRookies, ShouldBeEmpty)
			So(result.SustainabilityYears, ShouldEqual, 0)
		})
	})

	Convey("Given an even number of qualifying players", t, func() {
		players := []model.RookieContractStar{
			{PlayerID: "p1", Position: "EDGE", PFFGrade: 90, CurrentYearCapHit: 1_000_000, ExtensionEligibleYear: params.CurrentYear + 1},
			{PlayerID: "p2", Position: "EDGE", PFFGrade: 90, CurrentYearCapHit: 1_000_000, ExtensionEligibleYear: params.CurrentYear + 4},
		}

		result := surplus.Aggregate(params, players)

		Convey("Then the median is the lower-middle element", func() {
			So(result.SustainabilityYears, ShouldEqual, 1)
		})
	})
}

func TestAdjustedEffectiveCost(t *testing.T) {
	Convey("Given a large surplus", t, func() {
		result := model.NonQBSurplusResult{
			TotalSurplus:          88_000_000,
			SurplusAsPercentOfCap: 31.5,
			SustainabilityYears:   2,
			StarRookies:           make([]model.RookieContractStar, 4),
		}

		cost := surplus.AdjustedEffectiveCost(17.0, result)

		Convey("Then half the surplus percent offsets the QB cost", func() {
			So(cost.SurplusOffset, ShouldEqual, 15.8)
			So(cost.EffectiveQBCost, ShouldAlmostEqual, 1.3, 0.05)
		})

		Convey("And the explanation carries a sustainability warning", func() {
			So(cost.Explanation, ShouldContainSubstring, "rookie stars")
			So(cost.Explanation, ShouldContainSubstring, "Warning")
		})
	})

	Convey("Given a small surplus", t, func() {
		result := model.NonQBSurplusResult{SurplusAsPercentOfCap: 2.0}
		cost := surplus.AdjustedEffectiveCost(8.0, result)

		Convey("Then the explanation notes limited surplus", func() {
			So(cost.Explanation, ShouldContainSubstring, "Limited non-QB surplus")
			So(cost.EffectiveQBCost, ShouldEqual, 7.0)
		})
	})

	Convey("Given an offset larger than the QB percentage", t, func() {
		result := model.NonQBSurplusResult{
			TotalSurplus:          90_000_000,
			SurplusAsPercentOfCap: 32.0,
			SustainabilityYears:   5,
		}
		cost := surplus.AdjustedEffectiveCost(3.0, result)

		Convey("Then the effective cost floors at zero", func() {
			So(cost.EffectiveQBCost, ShouldEqual, 0)
		})
	})
}

func TestSustainabilityWarning(t *testing.T) {
	params := league.NewParams()

	Convey("Given a surplus under the warning floor", t, func() {
		result := model.NonQBSurplusResult{TotalSurplus: 15_000_000, SustainabilityYears: 1}

		Convey("Then no warning is produced", func() {
			So(surplus.SustainabilityWarning(params, result), ShouldBeEmpty)
		})
	})

	Convey("Given a surplus expiring within a year", t, func() {
		result := model.NonQBSurplusResult{
			TotalSurplus:        40_000_000,
			SustainabilityYears: 1,
			StarRookies: []model.RookieContractStar{
				{PlayerName: "A", ExtensionEligibleYear: params.CurrentYear + 1},
				{PlayerName: "B", ExtensionEligibleYear: params.CurrentYear + 3},
			},
		}

		warning := surplus.SustainabilityWarning(params, result)

		Convey("Then the warning is critical and lists due extensions", func() {
			So(warning, ShouldStartWith, "CRITICAL")
			So(warning, ShouldContainSubstring, "A")
			So(strings.Contains(warning, "B"), ShouldBeFalse)
		})
	})

	Convey("Given a surplus expiring in two years", t, func() {
		result := model.NonQBSurplusResult{TotalSurplus: 40_000_000, SustainabilityYears: 2}

		Convey("Then the warning is non-critical", func() {
			So(surplus.SustainabilityWarning(params, result), ShouldStartWith, "WARNING")
		})
	})

	Convey("Given a durable surplus", t, func() {
		result := model.NonQBSurplusResult{TotalSurplus: 40_000_000, SustainabilityYears: 4}

		Convey("Then no warning is produced", func() {
			So(surplus.SustainabilityWarning(params, result), ShouldBeEmpty)
		})
	})
}
