// Package league holds the league-wide cap parameters and the salary cap
// projection model.
package league

import "math"

// Default league parameters for the current dataset snapshot.
const (
	DefaultCurrentYear = 2025
	DefaultCurrentCap  = 279_200_000.0
	DefaultGrowthRate  = 0.085

	// DangerThreshold is the primary cap-hit-percent trigger for trajectory
	// analysis. ClosedThreshold is the secondary figure used in narrative
	// text; the formal zone boundary is 15. Both are referenced at different
	// call sites and must stay distinct.
	DangerThreshold = 13.0
	ClosedThreshold = 16.0
)

// Params are the process-wide cap parameters, read-only once loaded.
type Params struct {
	CurrentYear int
	CurrentCap  float64
	GrowthRate  float64
}

// Option applies a configuration option to Params.
type Option func(*Params)

// WithCurrentYear sets the current season year.
func WithCurrentYear(year int) Option {
	return func(p *Params) {
		if year > 0 {
			p.CurrentYear = year
		}
	}
}

// WithCurrentCap sets the current league-wide salary cap.
func WithCurrentCap(cap float64) Option {
	return func(p *Params) {
		if cap > 0 {
			p.CurrentCap = cap
		}
	}
}

// WithGrowthRate sets the annual cap growth rate.
func WithGrowthRate(rate float64) Option {
	return func(p *Params) {
		if rate != 0 {
			p.GrowthRate = rate
		}
	}
}

// NewParams builds Params with defaults and applies options.
func NewParams(opts ...Option) Params {
	p := Params{
		CurrentYear: DefaultCurrentYear,
		CurrentCap:  DefaultCurrentCap,
		GrowthRate:  DefaultGrowthRate,
	}

	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// ProjectCap compounds the current cap by the annual growth rate for
// year - CurrentYear periods, rounded to the nearest whole dollar. Years
// before the current year yield a contraction rather than an error.
func (p Params) ProjectCap(year int) float64 {
	yearsOut := year - p.CurrentYear
	return math.Round(p.CurrentCap * math.Pow(1+p.GrowthRate, float64(yearsOut)))
}

// CapHitPercent returns amount as a percentage of the projected cap for the
// given year.
func (p Params) CapHitPercent(amount float64, year int) float64 {
	return (amount / p.ProjectCap(year)) * 100
}
