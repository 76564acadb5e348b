package service

import (
	"time"

	"github.com/okian/gigmatch/internal/adapters/profiles"
	"github.com/okian/gigmatch/internal/adapters/repository"
	"github.com/okian/gigmatch/internal/domain/match"
	"github.com/okian/gigmatch/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRepository sets the project repository.
func WithRepository(r repository.ProjectRepository) Option {
	return func(s *Service) {
		if r != nil {
			s.repo = r
		}
	}
}

// WithProfileProvider sets the provider used when a request carries no profile.
func WithProfileProvider(p profiles.Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.profiles = p
		}
	}
}

// WithEngine sets the matching engine.
func WithEngine(e *match.Engine) Option {
	return func(s *Service) {
		if e != nil {
			s.engine = e
		}
	}
}

// WithMaxResults caps the number of results returned; 0 means unlimited.
func WithMaxResults(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.maxResults = n
		}
	}
}

// WithDefaultMinScore sets the threshold used when a request sets none.
func WithDefaultMinScore(score int) Option {
	return func(s *Service) {
		if score >= 0 && score <= 100 {
			s.defaultMinScore = score
		}
	}
}

// WithSampleInterval sets how often runtime gauges are sampled once the
// service starts. Zero keeps the metrics default.
func WithSampleInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sampleInterval = d
		}
	}
}
