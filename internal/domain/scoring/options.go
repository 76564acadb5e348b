package scoring

import (
	"math"

	"github.com/okian/gigmatch/internal/domain/profile"
)

// Option applies a configuration option to the Calculator.
type Option func(*Calculator)

// WithWeights sets the maximum contribution of the skill, experience and
// track-record terms. Negative weights are ignored.
func WithWeights(skill, experience, trackRecord float64) Option {
	return func(c *Calculator) {
		for _, w := range []float64{skill, experience, trackRecord} {
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return
			}
		}
		c.skillWeight = skill
		c.experienceWeight = experience
		c.trackRecordWeight = trackRecord
	}
}

// WithProjectsSaturation sets the completed-project count at which the
// track-record volume factor reaches 1.
func WithProjectsSaturation(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.projectsSaturation = float64(n)
		}
	}
}

// WithRatingSaturation sets the rating at which the track-record quality
// factor reaches 1. Values outside (0,5] are ignored.
func WithRatingSaturation(r float64) Option {
	return func(c *Calculator) {
		if r > 0 && r <= 5 {
			c.ratingSaturation = r
		}
	}
}

// WithDomainVocabulary sets extra keywords per experience tag. A listing is
// inferred to belong to a tag when the tag or any of its synonyms occurs in
// the listing's title or description.
func WithDomainVocabulary(vocab map[string][]string) Option {
	return func(c *Calculator) {
		// Copy to avoid external modifications
		c.vocabulary = make(map[string][]string, len(vocab))
		for tag, synonyms := range vocab {
			key := profile.Canonical(tag)
			if key == "" {
				continue
			}
			for _, s := range synonyms {
				if cs := profile.Canonical(s); cs != "" {
					c.vocabulary[key] = append(c.vocabulary[key], cs)
				}
			}
		}
	}
}
