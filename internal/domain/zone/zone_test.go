package zone_test

import (
	"math"
	"testing"

	"github.com/okian/capwindow/internal/domain/zone"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given the zone classifier", t, func() {
		Convey("When classifying mid-band percentages", func() {
			cases := map[float64]string{
				0:    zone.Elite,
				2:    zone.Elite,
				5.99: zone.Elite,
				7:    zone.Favorable,
				11:   zone.Caution,
				14:   zone.Danger,
				17:   zone.Closed,
				40:   zone.Closed,
			}

			for pct, want := range cases {
				So(zone.Classify(pct).Zone, ShouldEqual, want)
			}
		})

		Convey("When classifying exact boundary values", func() {
			Convey("Then boundaries are closed below", func() {
				So(zone.Classify(6).Zone, ShouldEqual, zone.Favorable)
				So(zone.Classify(10).Zone, ShouldEqual, zone.Caution)
				So(zone.Classify(13).Zone, ShouldEqual, zone.Danger)
				So(zone.Classify(15).Zone, ShouldEqual, zone.Closed)
			})
		})

		Convey("When classifying out-of-range inputs", func() {
			Convey("Then negative percentages land in ELITE", func() {
				So(zone.Classify(-3).Zone, ShouldEqual, zone.Elite)
			})

			Convey("And arbitrarily large percentages land in CLOSED", func() {
				So(zone.Classify(1e9).Zone, ShouldEqual, zone.Closed)
				So(zone.Classify(math.MaxFloat64).Zone, ShouldEqual, zone.Closed)
			})
		})

		Convey("When sweeping the real line", func() {
			Convey("Then exactly one zone applies everywhere", func() {
				for pct := -10.0; pct <= 40.0; pct += 0.25 {
					z := zone.Classify(pct)
					So(z.Zone, ShouldBeIn, []string{
						zone.Elite, zone.Favorable, zone.Caution, zone.Danger, zone.Closed,
					})
					So(z.Color, ShouldNotBeEmpty)
					So(z.Label, ShouldNotBeEmpty)
				}
			})
		})
	})
}

func TestStatusForScore(t *testing.T) {
	Convey("Given the status classifier", t, func() {
		Convey("When resolving tier boundaries", func() {
			cases := map[float64]string{
				100:  zone.WideOpen,
				80:   zone.WideOpen,
				79.9: zone.Open,
				65:   zone.Open,
				64:   zone.Closing,
				50:   zone.Closing,
				49:   zone.SoftClosed,
				35:   zone.SoftClosed,
				34:   zone.HardClosed,
				0:    zone.HardClosed,
			}

			for score, want := range cases {
				So(zone.StatusForScore(score).Status, ShouldEqual, want)
			}
		})
	})
}
