// Package service provides the host service that feeds the matching engine
// and implements the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/gigmatch/internal/adapters/profiles"
	"github.com/okian/gigmatch/internal/adapters/repository"
	"github.com/okian/gigmatch/internal/domain/filter"
	"github.com/okian/gigmatch/internal/domain/match"
	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/internal/domain/profile"
	"github.com/okian/gigmatch/internal/domain/recommend"
	"github.com/okian/gigmatch/pkg/logger"
	"github.com/okian/gigmatch/pkg/metrics"
)

// SearchRequest is one search. A nil Profile is fetched from the profile
// provider; a nil MinScore falls back to the service default.
type SearchRequest struct {
	Profile   *model.FreelancerProfile
	Text      string
	MinBudget *float64
	MaxBudget *float64
	MinScore  *int
}

// SearchResult is the ranked outcome of a search.
type SearchResult struct {
	RequestID string
	Results   []model.ScoredListing
	// Matched counts results before the max_results cap.
	Matched   int
	Truncated bool
}

// Service wires a project repository and a profile provider to the engine.
type Service struct {
	mu sync.RWMutex

	repo     repository.ProjectRepository
	profiles profiles.Provider
	engine   *match.Engine

	maxResults      int
	defaultMinScore int
	sampleInterval  time.Duration

	started   bool
	startedAt time.Time
	stopFn    context.CancelFunc

	searches atomic.Int64
	failures atomic.Int64
	returned atomic.Int64

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		repo:       repository.NewMemoryStore(),
		profiles:   profiles.None{},
		engine:     match.New(),
		maxResults: 100,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the logger and starts background metric sampling.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}

	metrics.SetRefreshInterval(s.sampleInterval)
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go metrics.RunRuntimeSampler(runCtx)
	s.stopFn = cancel

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "match service started",
		logger.Int("max_results", s.maxResults),
		logger.Int("default_min_score", s.defaultMinScore),
		logger.Duration("sample_interval", metrics.RefreshInterval()),
	)
	return nil
}

// Stop halts background work and closes the repository when it supports it.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.stopFn()
	if c, ok := s.repo.(interface{ Close() }); ok {
		c.Close()
	}
	s.started = false
	s.logger.Info(context.Background(), "match service stopped")
}

func (s *Service) log() logger.Logger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.logger == nil {
		return logger.Discard()
	}
	return s.logger
}

// Search fetches the profile and the pre-filtered pool concurrently, runs
// the engine and caps the ranked result.
func (s *Service) Search(ctx context.Context, req SearchRequest) (SearchResult, error) {
	start := time.Now()
	res := SearchResult{RequestID: uuid.NewString()}
	ctx = logger.WithRequestID(ctx, res.RequestID)
	log := s.log()

	q := model.Query{
		Text:      req.Text,
		MinBudget: req.MinBudget,
		MaxBudget: req.MaxBudget,
		MinScore:  s.defaultMinScore,
	}
	if req.MinScore != nil {
		q.MinScore = *req.MinScore
	}

	out, pool, err := s.run(ctx, req.Profile, q)
	if err != nil {
		s.failures.Add(1)
		metrics.RecordSearchError(ErrorKind(err))
		log.Warn(ctx, "search failed", logger.Error(err), logger.String("kind", ErrorKind(err)))
		return res, err
	}

	res.Matched = len(out)
	if s.maxResults > 0 && len(out) > s.maxResults {
		out = out[:s.maxResults]
		res.Truncated = true
	}
	res.Results = out

	s.searches.Add(1)
	s.returned.Add(int64(len(out)))
	took := time.Since(start)
	metrics.RecordSearch(pool, len(out), float64(took.Microseconds())/1000)
	recordTiers(ctx, log, out)
	log.Info(ctx, "search completed",
		logger.Int("pool", pool),
		logger.Int("matched", res.Matched),
		logger.Bool("truncated", res.Truncated),
		logger.Int("min_score", q.MinScore),
		logger.Duration("took", took),
	)
	return res, nil
}

// run returns the ranked listings and the size of the pool offered to the engine.
func (s *Service) run(ctx context.Context, inline *model.FreelancerProfile, q model.Query) ([]model.ScoredListing, int, error) {
	if err := filter.ValidateThreshold(q.MinScore); err != nil {
		return nil, 0, err
	}
	f := repository.FilterFromQuery(q)
	if err := f.Validate(); err != nil {
		return nil, 0, err
	}

	var (
		p    model.FreelancerProfile
		pool []model.ProjectListing
	)
	g, gctx := errgroup.WithContext(ctx)
	if inline != nil {
		p = *inline
	} else {
		g.Go(func() error {
			var err error
			p, err = s.profiles.GetProfile(gctx)
			return err
		})
	}
	g.Go(func() error {
		var err error
		pool, err = s.repo.ListProjects(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	out, err := s.engine.Search(p, pool, q)
	if err != nil {
		return nil, 0, err
	}
	return out, len(pool), nil
}

// ListProjects returns the repository pool for f.
func (s *Service) ListProjects(ctx context.Context, f repository.Filter) ([]model.ProjectListing, error) {
	return s.repo.ListProjects(ctx, f)
}

// Recommend returns the tier and message for score.
func (s *Service) Recommend(score int) (recommend.Recommendation, error) {
	return recommend.Recommend(score)
}

// recordTiers counts the tier of every returned listing. A tier the metrics
// layer does not know is logged and skipped.
func recordTiers(ctx context.Context, log logger.Logger, out []model.ScoredListing) {
	for _, r := range out {
		if err := metrics.RecordRecommendation(string(r.RecommendationTier)); err != nil {
			log.Debug(ctx, "recommendation not recorded", logger.String("tier", string(r.RecommendationTier)), logger.Error(err))
		}
	}
}

// ErrorKind classifies err for metrics, logs and API error codes.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, profiles.ErrLoad):
		return "profile_unavailable"
	case errors.Is(err, profile.ErrInvalidProfile):
		return "invalid_profile"
	case errors.Is(err, filter.ErrInvalidThreshold):
		return "invalid_threshold"
	case errors.Is(err, repository.ErrInvalidFilter):
		return "invalid_filter"
	case errors.Is(err, profiles.ErrNoProfile):
		return "no_profile"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "internal"
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":           s.started,
		"searches":          s.searches.Load(),
		"failures":          s.failures.Load(),
		"results_returned":  s.returned.Load(),
		"max_results":       s.maxResults,
		"default_min_score": s.defaultMinScore,
	}
	if s.started {
		stats["uptime_seconds"] = int64(time.Since(s.startedAt).Seconds())
	}
	if c, ok := s.repo.(interface{ Count() int }); ok {
		stats["catalog_listings"] = c.Count()
	}
	return stats
}
