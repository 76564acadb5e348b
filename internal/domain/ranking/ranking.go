// Package ranking orders scored listings by compatibility.
package ranking

import (
	"slices"

	"github.com/okian/gigmatch/internal/domain/model"
)

// Rank returns a copy of listings ordered by MatchScore descending.
// Listings with equal scores keep their input order.
func Rank(listings []model.ScoredListing) []model.ScoredListing {
	out := slices.Clone(listings)
	if out == nil {
		out = []model.ScoredListing{}
	}
	slices.SortStableFunc(out, func(a, b model.ScoredListing) int {
		return b.MatchScore - a.MatchScore
	})
	return out
}
