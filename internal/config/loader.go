package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvConfigPath names the env var holding an optional YAML config path.
const EnvConfigPath = "CAPWINDOW_CONFIG"

const envPrefix = "CAPWINDOW_"

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if CAPWINDOW_CONFIG is set
//  3. env (prefix CAPWINDOW_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv(EnvConfigPath); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: CAPWINDOW_ADDR, CAPWINDOW_WORKER_COUNT, ...
	// Single underscores are preserved to match koanf tags; a double
	// underscore descends into a nested section, so
	// CAPWINDOW_LEAGUE__CURRENT_CAP -> league.current_cap.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, strings.ToLower(envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.WorkerCount <= 0:
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	case cfg.MaxRankingLimit <= 0:
		return fmt.Errorf("%w: max_ranking_limit must be positive", ErrInvalidConfig)
	case cfg.League.CurrentYear <= 0:
		return fmt.Errorf("%w: league.current_year must be positive", ErrInvalidConfig)
	case cfg.League.CurrentCap <= 0:
		return fmt.Errorf("%w: league.current_cap must be positive", ErrInvalidConfig)
	case cfg.League.GrowthRate <= -1:
		return fmt.Errorf("%w: league.growth_rate must be greater than -1", ErrInvalidConfig)
	}
	return nil
}
