package main

import (
	"context"
	"fmt"

	"github.com/okian/gigmatch/internal/adapters/profiles"
	"github.com/okian/gigmatch/internal/adapters/repository"
	service "github.com/okian/gigmatch/internal/app"
	"github.com/okian/gigmatch/internal/config"
	"github.com/okian/gigmatch/internal/domain/match"
	"github.com/okian/gigmatch/internal/domain/scoring"
	"github.com/okian/gigmatch/pkg/logger"
)

// loadConfig reads configuration and applies the log settings it carries.
func loadConfig(ctx context.Context, opts ...logger.Option) (*config.Config, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(append([]logger.Option{logger.WithFormat(format)}, opts...)...); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return cfg, nil
}

func newEngine(cfg *config.Config) *match.Engine {
	return match.New(match.WithScoringOptions(
		scoring.WithWeights(cfg.SkillWeight, cfg.ExperienceWeight, cfg.TrackRecordWeight),
		scoring.WithProjectsSaturation(cfg.ProjectsSaturation),
		scoring.WithRatingSaturation(cfg.RatingSaturation),
		scoring.WithDomainVocabulary(cfg.DomainVocabulary),
	))
}

// openRepository picks Postgres when a database URL is configured and the
// YAML catalog otherwise.
func openRepository(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.ProjectRepository, error) {
	if cfg.DatabaseURL != "" {
		store, err := repository.Connect(ctx, cfg.DatabaseURL,
			repository.WithDedupeCapacity(cfg.DedupeCapacity),
			repository.WithLogger(log.Named("postgres")),
		)
		if err != nil {
			return nil, err
		}
		log.Info(ctx, "using postgres project repository")
		return store, nil
	}

	store := repository.NewMemoryStore()
	if cfg.CatalogPath != "" {
		listings, err := repository.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		store.Replace(listings)
		log.Info(ctx, "catalog loaded", logger.String("path", cfg.CatalogPath), logger.Int("listings", len(listings)))
	}
	return store, nil
}

func profileProvider(cfg *config.Config) profiles.Provider {
	if cfg.ProfilePath == "" {
		return profiles.None{}
	}
	return profiles.File{Path: cfg.ProfilePath}
}

// newService wires the configured collaborators into a Service.
func newService(ctx context.Context, cfg *config.Config, log logger.Logger) (*service.Service, *match.Engine, error) {
	repo, err := openRepository(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	engine := newEngine(cfg)
	svc := service.New(
		service.WithLogger(log.Named("service")),
		service.WithRepository(repo),
		service.WithProfileProvider(profileProvider(cfg)),
		service.WithEngine(engine),
		service.WithMaxResults(cfg.MaxResults),
		service.WithDefaultMinScore(cfg.DefaultMinScore),
		service.WithSampleInterval(cfg.MetricsInterval),
	)
	return svc, engine, nil
}
