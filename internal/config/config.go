// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Load(ctx) layers an optional YAML file and env vars on top.
// - External errors must be wrapped via this package's sentinel kinds.
package config

import (
	"context"
	"runtime"

	"github.com/okian/capwindow/internal/domain/league"
	"github.com/okian/capwindow/internal/domain/ranking"
)

// LeagueConfig carries the cap-model parameters.
type LeagueConfig struct {
	// CurrentYear anchors all projections.
	CurrentYear int `koanf:"current_year"`

	// CurrentCap is the league-wide salary cap for the current year.
	CurrentCap float64 `koanf:"current_cap"`

	// GrowthRate is the assumed annual cap growth, e.g. 0.085.
	GrowthRate float64 `koanf:"growth_rate"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// DatasetPath points at a dataset JSON file; empty uses the embedded
	// default snapshot.
	DatasetPath string `koanf:"dataset_path"`

	// WorkerCount bounds the per-team scoring fan-out.
	WorkerCount int `koanf:"worker_count"`

	// MaxRankingLimit caps GET /rankings?limit.
	MaxRankingLimit int `koanf:"max_ranking_limit"`

	// League holds the cap-model parameters.
	League LeagueConfig `koanf:"league"`

	// Ruleset holds the curated alert allow-lists.
	Ruleset ranking.Ruleset `koanf:"ruleset"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		DatasetPath:     "",
		WorkerCount:     runtime.NumCPU(),
		MaxRankingLimit: 32,
		League: LeagueConfig{
			CurrentYear: league.DefaultCurrentYear,
			CurrentCap:  league.DefaultCurrentCap,
			GrowthRate:  league.DefaultGrowthRate,
		},
		Ruleset: ranking.DefaultRuleset(),
	}
}

// Params converts the league section into engine parameters.
func (c *Config) Params() league.Params {
	return league.NewParams(
		league.WithCurrentYear(c.League.CurrentYear),
		league.WithCurrentCap(c.League.CurrentCap),
		league.WithGrowthRate(c.League.GrowthRate),
	)
}
