package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/okian/gigmatch/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DefaultMinScore, convey.ShouldEqual, 0)
				convey.So(cfg.MaxResults, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GIGMATCH_ADDR", ":8080")
			_ = os.Setenv("GIGMATCH_DEFAULT_MIN_SCORE", "60")
			_ = os.Setenv("GIGMATCH_MAX_RESULTS", "25")
			_ = os.Setenv("GIGMATCH_SKILL_WEIGHT", "60.5")
			_ = os.Setenv("GIGMATCH_CATALOG_PATH", "/srv/catalog.yaml")
			_ = os.Setenv("GIGMATCH_METRICS_INTERVAL", "15s")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DefaultMinScore, convey.ShouldEqual, 60)
				convey.So(cfg.MaxResults, convey.ShouldEqual, 25)
				convey.So(cfg.SkillWeight, convey.ShouldEqual, 60.5)
				convey.So(cfg.CatalogPath, convey.ShouldEqual, "/srv/catalog.yaml")
				convey.So(cfg.MetricsInterval, convey.ShouldEqual, 15*time.Second)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			path := writeTempConfig(t, `
addr: ":9090"
log_format: json
max_results: 10
projects_saturation: 30
domain_vocabulary:
  gaming:
    - unity
    - unreal
`)
			_ = os.Setenv("GIGMATCH_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the file and keep other defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.MaxResults, convey.ShouldEqual, 10)
				convey.So(cfg.ProjectsSaturation, convey.ShouldEqual, 30)
				convey.So(cfg.SkillWeight, convey.ShouldEqual, 70.0)
			})

			convey.Convey("And the configured vocabulary replaces the default one", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.DomainVocabulary, convey.ShouldResemble, map[string][]string{
					"gaming": {"unity", "unreal"},
				})
			})
		})

		convey.Convey("When both file and environment variables are set", func() {
			path := writeTempConfig(t, "addr: \":9090\"\nmax_results: 10\n")
			_ = os.Setenv("GIGMATCH_CONFIG", path)
			_ = os.Setenv("GIGMATCH_ADDR", ":8080")

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MaxResults, convey.ShouldEqual, 10)
			})
		})

		convey.Convey("When the YAML file is invalid", func() {
			path := writeTempConfig(t, `invalid: yaml: content: [`)
			_ = os.Setenv("GIGMATCH_CONFIG", path)

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the file does not exist", func() {
			_ = os.Setenv("GIGMATCH_CONFIG", "/non/existent/file.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When a numeric variable does not parse", func() {
			_ = os.Setenv("GIGMATCH_MAX_RESULTS", "many")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When the loaded values fail validation", func() {
			_ = os.Setenv("GIGMATCH_DEFAULT_MIN_SCORE", "150")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"GIGMATCH_CONFIG",
		"GIGMATCH_ADDR",
		"GIGMATCH_DEFAULT_MIN_SCORE",
		"GIGMATCH_MAX_RESULTS",
		"GIGMATCH_SKILL_WEIGHT",
		"GIGMATCH_CATALOG_PATH",
		"GIGMATCH_METRICS_INTERVAL",
	} {
		_ = os.Unsetenv(key)
	}
}
