package loadgen

import (
	"fmt"

	"github.com/okian/gigmatch/internal/domain/recommend"
)

// Verify checks one response: scores are in [minScore, 100], never
// increase down the list, and carry the tier their score maps to.
func Verify(resp SearchResponse, minScore int) []error {
	var errs []error
	if resp.Count != len(resp.Results) {
		errs = append(errs, fmt.Errorf("count %d does not match %d results", resp.Count, len(resp.Results)))
	}
	for i, r := range resp.Results {
		if r.MatchScore < minScore || r.MatchScore > 100 {
			errs = append(errs, fmt.Errorf("result %d (%s): score %d outside [%d,100]", i, r.ID, r.MatchScore, minScore))
		}
		if i > 0 && r.MatchScore > resp.Results[i-1].MatchScore {
			errs = append(errs, fmt.Errorf("result %d (%s): score %d above previous %d", i, r.ID, r.MatchScore, resp.Results[i-1].MatchScore))
		}
		rec, err := recommend.Recommend(r.MatchScore)
		if err != nil {
			continue
		}
		if string(rec.Tier) != r.RecommendationTier {
			errs = append(errs, fmt.Errorf("result %d (%s): tier %q, want %q for score %d", i, r.ID, r.RecommendationTier, rec.Tier, r.MatchScore))
		}
	}
	return errs
}
