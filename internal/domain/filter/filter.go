// Package filter holds the pure pre-scoring and post-scoring filters of the
// matching pipeline. None of them reorder their input.
package filter

import (
	"fmt"
	"strings"

	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/internal/domain/profile"
)

// Score bounds accepted as a threshold.
const (
	MinThreshold = 0
	MaxThreshold = 100
)

// ValidateThreshold reports whether minScore is an acceptable threshold.
func ValidateThreshold(minScore int) error {
	if minScore < MinThreshold || minScore > MaxThreshold {
		return fmt.Errorf("%w: %d outside [%d,%d]", ErrInvalidThreshold, minScore, MinThreshold, MaxThreshold)
	}
	return nil
}

// Threshold keeps the listings whose score is at least minScore.
// The result is a new slice in input order.
func Threshold(scored []model.ScoredListing, minScore int) ([]model.ScoredListing, error) {
	if err := ValidateThreshold(minScore); err != nil {
		return nil, err
	}
	out := make([]model.ScoredListing, 0, len(scored))
	for _, s := range scored {
		if s.MatchScore >= minScore {
			out = append(out, s)
		}
	}
	return out, nil
}

// Text keeps listings whose title, description or any required skill
// contains text, compared case-insensitively. Empty text keeps everything;
// any other text, whitespace included, is matched as given.
func Text(listings []model.ProjectListing, text string) []model.ProjectListing {
	if text == "" {
		return append([]model.ProjectListing(nil), listings...)
	}
	needle := profile.Fold(text)
	out := make([]model.ProjectListing, 0, len(listings))
	for _, l := range listings {
		if MatchesText(l, needle) {
			out = append(out, l)
		}
	}
	return out
}

// MatchesText reports whether l contains needle, which must already be
// folded with profile.Fold.
func MatchesText(l model.ProjectListing, needle string) bool {
	if strings.Contains(profile.Fold(l.Title), needle) ||
		strings.Contains(profile.Fold(l.Description), needle) {
		return true
	}
	for _, s := range l.RequiredSkills {
		if strings.Contains(profile.Fold(s), needle) {
			return true
		}
	}
	return false
}

// Budget keeps listings whose budget range overlaps the requested bounds.
// A nil bound is not applied.
func Budget(listings []model.ProjectListing, minBudget, maxBudget *float64) []model.ProjectListing {
	out := make([]model.ProjectListing, 0, len(listings))
	for _, l := range listings {
		if MatchesBudget(l, minBudget, maxBudget) {
			out = append(out, l)
		}
	}
	return out
}

// MatchesBudget reports whether l satisfies the budget bounds.
func MatchesBudget(l model.ProjectListing, minBudget, maxBudget *float64) bool {
	if minBudget != nil && l.BudgetMax < *minBudget {
		return false
	}
	if maxBudget != nil && l.BudgetMin > *maxBudget {
		return false
	}
	return true
}
