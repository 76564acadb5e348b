package loadgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/gigmatch/pkg/logger"
)

const directoryPermission = 0o750

var (
	// ErrViolations is returned when any response broke the ranking contract.
	ErrViolations = errors.New("ranking contract violated")
	// ErrSearchesFailed is returned when any search did not get a 200 back.
	ErrSearchesFailed = errors.New("searches failed")
)

// Run executes a complete load run and returns its statistics.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	if cfg.Searches <= 0 || cfg.Workers <= 0 {
		return nil, fmt.Errorf("searches and workers must be positive")
	}
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()

	log.Info(ctx, "starting gigmatch load run",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("searches", cfg.Searches),
		logger.Int("workers", cfg.Workers),
		logger.Duration("timeout", cfg.Timeout),
		logger.Int("minScore", cfg.MinScore))

	if err := checkServiceHealth(ctx, cfg); err != nil {
		return nil, fmt.Errorf("service health check failed: %w", err)
	}

	n := cfg.Searches
	if n > cfg.Workers*4 {
		n = cfg.Workers * 4
	}
	profiles := generateProfiles(ctx, n, stats)

	submitSearches(ctx, cfg, profiles, stats)

	if cfg.OutputFile != "" {
		if err := saveProfiles(cfg.OutputFile, profiles); err != nil {
			log.Warn(ctx, "failed to save profiles", logger.Error(err))
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(ctx, stats)

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	if stats.Violations > 0 {
		return stats, fmt.Errorf("%w: %d violations", ErrViolations, stats.Violations)
	}
	if stats.SearchesFailed > 0 || stats.SearchesOK == 0 {
		return stats, fmt.Errorf("%w: %d of %d", ErrSearchesFailed, stats.SearchesFailed, stats.SearchesSubmitted)
	}
	return stats, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, cfg *Config) error {
	resp, err := newHTTPClient(cfg.Timeout).Get(ctx, cfg.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// The service answers with Prometheus metrics.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}

func saveProfiles(filename string, profiles []Profile) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o600)
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	var searchesPerSecond float64
	if stats.Duration > 0 {
		searchesPerSecond = float64(stats.SearchesSubmitted) / stats.Duration.Seconds()
	}
	logger.Get().Info(ctx, "final statistics",
		logger.Int("profilesGenerated", stats.ProfilesGenerated),
		logger.Int("searchesSubmitted", stats.SearchesSubmitted),
		logger.Int("searchesOK", stats.SearchesOK),
		logger.Int("searchesFailed", stats.SearchesFailed),
		logger.Int("resultsChecked", stats.ResultsChecked),
		logger.Int("violations", stats.Violations),
		logger.Duration("duration", stats.Duration),
		logger.Float64("searchesPerSecond", searchesPerSecond))
}
