// Package recommend maps a compatibility score onto a recommendation tier
// and its advisory message.
package recommend

import (
	"fmt"

	"github.com/okian/gigmatch/internal/domain/model"
)

// Recommendation is the tier and message attached to a scored listing.
type Recommendation struct {
	Tier    model.Tier `json:"tier"`
	Message string     `json:"message"`
}

// band is a closed-open score interval; the last band also includes 100.
type band struct {
	min     int
	tier    model.Tier
	message string
}

// bands are ordered from the highest floor down.
var bands = []band{
	{90, model.TierPerfect, "Perfect match! Your skills and experience align closely with this project. Apply now."},
	{75, model.TierGreat, "Great fit. You cover most of what this client needs; highlight your relevant work."},
	{60, model.TierGood, "Good potential. Consider brushing up on the missing skills before applying."},
	{0, model.TierFair, "Fair match. This project needs skills outside your current profile."},
}

// Recommend returns the recommendation for score.
func Recommend(score int) (Recommendation, error) {
	if score < 0 || score > 100 {
		return Recommendation{}, fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	for _, b := range bands {
		if score >= b.min {
			return Recommendation{Tier: b.tier, Message: b.message}, nil
		}
	}
	// unreachable: the last band starts at 0
	return Recommendation{}, fmt.Errorf("%w: %d", ErrInvalidScore, score)
}

// Message returns the fixed message of tier, or "" for an unknown tier.
func Message(tier model.Tier) string {
	for _, b := range bands {
		if b.tier == tier {
			return b.message
		}
	}
	return ""
}

// Tiers lists every tier from best to worst.
func Tiers() []model.Tier {
	out := make([]model.Tier, 0, len(bands))
	for _, b := range bands {
		out = append(out, b.tier)
	}
	return out
}
