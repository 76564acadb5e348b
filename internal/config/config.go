// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables over those defaults.
// - Validation failures wrap ErrInvalidConfig; I/O and parse failures wrap ErrLoadConfig.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogPath points at a YAML listing catalog loaded into memory.
	CatalogPath string `koanf:"catalog_path"`

	// ProfilePath points at the YAML freelancer profile used when a request
	// does not carry one.
	ProfilePath string `koanf:"profile_path"`

	// DatabaseURL selects the Postgres project repository when set.
	DatabaseURL string `koanf:"database_url"`

	// DefaultMinScore applies when a search does not set min_score.
	DefaultMinScore int `koanf:"default_min_score"`

	// MaxResults caps the number of ranked results returned; 0 is unlimited.
	MaxResults int `koanf:"max_results"`

	// MetricsInterval is how often runtime gauges are sampled, e.g. "15s".
	MetricsInterval time.Duration `koanf:"metrics_interval"`

	// DedupeCapacity bounds the listing-id cache used while paging a source.
	DedupeCapacity int `koanf:"dedupe_capacity"`

	// Scoring weights and saturation points.
	SkillWeight        float64 `koanf:"skill_weight"`
	ExperienceWeight   float64 `koanf:"experience_weight"`
	TrackRecordWeight  float64 `koanf:"track_record_weight"`
	ProjectsSaturation int     `koanf:"projects_saturation"`
	RatingSaturation   float64 `koanf:"rating_saturation"`

	// DomainVocabulary maps an experience tag to extra keywords that mark a
	// listing as belonging to that domain.
	DomainVocabulary map[string][]string `koanf:"domain_vocabulary"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		DefaultMinScore:    0,
		MaxResults:         100,
		MetricsInterval:    10 * time.Second,
		DedupeCapacity:     50_000,
		SkillWeight:        70,
		ExperienceWeight:   15,
		TrackRecordWeight:  15,
		ProjectsSaturation: 20,
		RatingSaturation:   4.5,
		DomainVocabulary: map[string][]string{
			"e-commerce": {"ecommerce", "online store", "storefront", "shopify", "checkout"},
			"fintech":    {"payments", "banking", "ledger", "trading"},
			"healthcare": {"health", "medical", "patient", "clinic"},
			"education":  {"edtech", "learning", "course", "students"},
		},
	}
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Addr) == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.DefaultMinScore < 0 || c.DefaultMinScore > 100:
		return fmt.Errorf("%w: default_min_score %d outside [0,100]", ErrInvalidConfig, c.DefaultMinScore)
	case c.MaxResults < 0:
		return fmt.Errorf("%w: max_results must not be negative", ErrInvalidConfig)
	case c.SkillWeight < 0 || c.ExperienceWeight < 0 || c.TrackRecordWeight < 0:
		return fmt.Errorf("%w: scoring weights must not be negative", ErrInvalidConfig)
	case c.MetricsInterval <= 0:
		return fmt.Errorf("%w: metrics_interval must be positive", ErrInvalidConfig)
	case c.ProjectsSaturation <= 0:
		return fmt.Errorf("%w: projects_saturation must be positive", ErrInvalidConfig)
	case c.RatingSaturation <= 0 || c.RatingSaturation > 5:
		return fmt.Errorf("%w: rating_saturation %v outside (0,5]", ErrInvalidConfig, c.RatingSaturation)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q must be text or json", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
