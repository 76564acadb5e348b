// Package match composes the matching pipeline: text and budget filtering,
// scoring, thresholding, ranking and recommendation.
package match

import (
	"fmt"

	"github.com/okian/gigmatch/internal/domain/filter"
	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/internal/domain/profile"
	"github.com/okian/gigmatch/internal/domain/ranking"
	"github.com/okian/gigmatch/internal/domain/recommend"
	"github.com/okian/gigmatch/internal/domain/scoring"
)

// Engine runs searches. It is immutable after construction and safe for
// concurrent use; it keeps nothing between calls.
type Engine struct {
	calc *scoring.Calculator
}

// New creates an Engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{calc: scoring.New()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = New()

// Search runs the pipeline with the default engine.
func Search(p model.FreelancerProfile, listings []model.ProjectListing, q model.Query) ([]model.ScoredListing, error) {
	return defaultEngine.Search(p, listings, q)
}

// Search scores listings against p and returns the ones meeting q.MinScore,
// best first, each with its recommendation attached. An empty result is a
// non-nil empty slice.
func (e *Engine) Search(p model.FreelancerProfile, listings []model.ProjectListing, q model.Query) ([]model.ScoredListing, error) {
	if err := filter.ValidateThreshold(q.MinScore); err != nil {
		return nil, err
	}

	pool := filter.Text(listings, q.Text)
	pool = filter.Budget(pool, q.MinBudget, q.MaxBudget)

	np, err := profile.Normalize(p)
	if err != nil {
		return nil, err
	}

	scored := make([]model.ScoredListing, 0, len(pool))
	for _, l := range pool {
		scored = append(scored, model.ScoredListing{
			ProjectListing: l,
			MatchScore:     e.calc.Score(np, l),
		})
	}

	kept, err := filter.Threshold(scored, q.MinScore)
	if err != nil {
		return nil, err
	}
	ranked := ranking.Rank(kept)

	for i := range ranked {
		rec, err := recommend.Recommend(ranked[i].MatchScore)
		if err != nil {
			return nil, fmt.Errorf("listing %q: %w", ranked[i].ID, err)
		}
		ranked[i].RecommendationTier = rec.Tier
		ranked[i].RecommendationMessage = rec.Message
	}
	return ranked, nil
}

// Explain returns the score breakdown of one listing for p.
func (e *Engine) Explain(p model.FreelancerProfile, l model.ProjectListing) (scoring.Breakdown, error) {
	np, err := profile.Normalize(p)
	if err != nil {
		return scoring.Breakdown{}, err
	}
	return e.calc.Breakdown(np, l), nil
}
