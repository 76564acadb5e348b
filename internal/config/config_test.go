package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/gigmatch/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.MaxResults, convey.ShouldEqual, 100)
			convey.So(cfg.SkillWeight, convey.ShouldEqual, 70.0)
			convey.So(cfg.ExperienceWeight, convey.ShouldEqual, 15.0)
			convey.So(cfg.TrackRecordWeight, convey.ShouldEqual, 15.0)
			convey.So(cfg.ProjectsSaturation, convey.ShouldEqual, 20)
			convey.So(cfg.MetricsInterval, convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.DomainVocabulary, convey.ShouldContainKey, "e-commerce")
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given configs with one invalid field each", t, func() {
		cases := map[string]func(*config.Config){
			"empty addr":            func(c *config.Config) { c.Addr = " " },
			"min score too high":    func(c *config.Config) { c.DefaultMinScore = 101 },
			"negative min score":    func(c *config.Config) { c.DefaultMinScore = -1 },
			"negative max results":  func(c *config.Config) { c.MaxResults = -5 },
			"negative weight":       func(c *config.Config) { c.ExperienceWeight = -1 },
			"zero saturation":       func(c *config.Config) { c.ProjectsSaturation = 0 },
			"zero metrics interval": func(c *config.Config) { c.MetricsInterval = 0 },
			"rating saturation":     func(c *config.Config) { c.RatingSaturation = 6 },
			"unknown log format":    func(c *config.Config) { c.LogFormat = "xml" },
		}
		for name, mutate := range cases {
			convey.Convey("When the config has "+name, func() {
				cfg := config.New()
				mutate(cfg)
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}
	})
}
