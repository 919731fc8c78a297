package qbvalue_test

import (
	"testing"

	"github.com/okian/capwindow/internal/domain/model"
	"github.com/okian/capwindow/internal/domain/qbvalue"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEstimatePerformanceValue(t *testing.T) {
	Convey("Given the performance value model", t, func() {
		Convey("When every metric saturates high", func() {
			metrics := model.PerformanceMetrics{
				EPAPerPlay:  0.5,
				CPOE:        10,
				QBR:         99,
				Wins:        17,
				PlayoffWins: 4,
			}

			Convey("Then the value caps at $65M", func() {
				So(qbvalue.EstimatePerformanceValue(metrics), ShouldEqual, 65_000_000)
			})
		})

		Convey("When every metric saturates low", func() {
			metrics := model.PerformanceMetrics{
				EPAPerPlay: -1,
				CPOE:       -20,
				QBR:        0,
				Wins:       0,
			}

			Convey("Then the value floors at $5M", func() {
				So(qbvalue.EstimatePerformanceValue(metrics), ShouldEqual, 5_000_000)
			})
		})

		Convey("When metrics sit mid-range", func() {
			metrics := model.PerformanceMetrics{
				EPAPerPlay:  0.1,
				CPOE:        1.5,
				QBR:         55,
				Wins:        9,
				PlayoffWins: 1,
			}
			value := qbvalue.EstimatePerformanceValue(metrics)

			Convey("Then the value stays inside the output range", func() {
				So(value, ShouldBeGreaterThan, 5_000_000)
				So(value, ShouldBeLessThan, 65_000_000)
			})
		})
	})
}

func TestQualityScore(t *testing.T) {
	Convey("Given the quality score model", t, func() {
		Convey("When metrics are absent", func() {
			Convey("Then the unproven score is exactly 40", func() {
				So(qbvalue.QualityScore(nil), ShouldEqual, 40)
			})
		})

		Convey("When metrics are entirely zero", func() {
			Convey("Then the unproven score is exactly 40", func() {
				So(qbvalue.QualityScore(&model.PerformanceMetrics{}), ShouldEqual, 40)
			})
		})

		Convey("When metrics describe an elite season", func() {
			metrics := &model.PerformanceMetrics{
				EPAPerPlay: 0.28,
				CPOE:       6,
				QBR:        80,
				PFFGrade:   93,
			}
			score := qbvalue.QualityScore(metrics)

			Convey("Then the score approaches 100 without exceeding it", func() {
				So(score, ShouldBeGreaterThan, 90)
				So(score, ShouldBeLessThanOrEqualTo, 100)
			})
		})

		Convey("When metrics describe a poor season", func() {
			metrics := &model.PerformanceMetrics{
				EPAPerPlay: -0.15,
				CPOE:       -4,
				QBR:        32,
				PFFGrade:   52,
			}
			score := qbvalue.QualityScore(metrics)

			Convey("Then the score stays low but in bounds", func() {
				So(score, ShouldBeGreaterThanOrEqualTo, 0)
				So(score, ShouldBeLessThan, 30)
			})
		})

		Convey("When metrics are wildly out of range", func() {
			metrics := &model.PerformanceMetrics{
				EPAPerPlay: 50,
				CPOE:       500,
				QBR:        1e6,
				PFFGrade:   -1e6,
			}
			score := qbvalue.QualityScore(metrics)

			Convey("Then normalizations saturate and the score stays in [0,100]", func() {
				So(score, ShouldBeGreaterThanOrEqualTo, 0)
				So(score, ShouldBeLessThanOrEqualTo, 100)
			})
		})
	})
}

func TestCompareValueToContract(t *testing.T) {
	Convey("Given the contract comparison", t, func() {
		Convey("When performance value exceeds the cap hit by more than 20%", func() {
			So(qbvalue.CompareValueToContract(50_000_000, 30_000_000), ShouldEqual, qbvalue.ComparisonSurplus)
		})

		Convey("When performance value trails the cap hit by more than 20%", func() {
			So(qbvalue.CompareValueToContract(20_000_000, 40_000_000), ShouldEqual, qbvalue.ComparisonOverpay)
		})

		Convey("When performance value sits within 20% of the cap hit", func() {
			So(qbvalue.CompareValueToContract(33_000_000, 30_000_000), ShouldEqual, qbvalue.ComparisonFair)
			So(qbvalue.CompareValueToContract(25_000_000, 30_000_000), ShouldEqual, qbvalue.ComparisonFair)
		})
	})
}

func TestTier(t *testing.T) {
	Convey("Given the value tiers", t, func() {
		cases := map[float64]string{
			65_000_000: "Elite",
			55_000_000: "Pro Bowl",
			45_000_000: "Above Average",
			35_000_000: "Average",
			25_000_000: "Below Average",
			10_000_000: "Replacement",
		}

		for value, want := range cases {
			So(qbvalue.Tier(value), ShouldEqual, want)
		}
	})
}
