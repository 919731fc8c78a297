package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/capwindow/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	vars := []string{
		"CAPWINDOW_CONFIG",
		"CAPWINDOW_ADDR",
		"CAPWINDOW_LOG_LEVEL",
		"CAPWINDOW_DATASET_PATH",
		"CAPWINDOW_WORKER_COUNT",
		"CAPWINDOW_MAX_RANKING_LIMIT",
		"CAPWINDOW_LEAGUE__CURRENT_YEAR",
		"CAPWINDOW_LEAGUE__CURRENT_CAP",
		"CAPWINDOW_LEAGUE__GROWTH_RATE",
	}
	for _, v := range vars {
		_ = os.Unsetenv(v)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.League.CurrentCap, convey.ShouldEqual, 279_200_000.0)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("CAPWINDOW_ADDR", ":8080")
			_ = os.Setenv("CAPWINDOW_WORKER_COUNT", "4")
			_ = os.Setenv("CAPWINDOW_LEAGUE__CURRENT_CAP", "300000000")
			_ = os.Setenv("CAPWINDOW_LEAGUE__GROWTH_RATE", "0.07")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)
				convey.So(cfg.League.CurrentCap, convey.ShouldEqual, 300_000_000.0)
				convey.So(cfg.League.GrowthRate, convey.ShouldEqual, 0.07)
			})
		})

		convey.Convey("When loading config from a YAML file", func() {
			clearConfigEnvVars()

			dir := t.TempDir()
			path := filepath.Join(dir, "capwindow.yaml")
			body := []byte("addr: \":7070\"\nlog_level: debug\nleague:\n  current_year: 2026\nruleset:\n  no_warning_teams:\n    - KC\n")
			convey.So(os.WriteFile(path, body, 0o600), convey.ShouldBeNil)
			_ = os.Setenv("CAPWINDOW_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values layer over defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.League.CurrentYear, convey.ShouldEqual, 2026)
				convey.So(cfg.League.CurrentCap, convey.ShouldEqual, 279_200_000.0)
				convey.So(cfg.Ruleset.NoWarningTeams, convey.ShouldResemble, []string{"KC"})
			})
		})

		convey.Convey("When a value fails validation", func() {
			_ = os.Setenv("CAPWINDOW_WORKER_COUNT", "0")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails with the invalid-config kind", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "worker_count")
			})
		})

		convey.Convey("When the config file is missing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("CAPWINDOW_CONFIG", "/nonexistent/capwindow.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
