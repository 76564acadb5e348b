// Package scoring computes the compatibility score of a freelancer profile
// against a single project listing.
package scoring

import (
	"math"
	"strings"

	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/internal/domain/profile"
)

// Default scoring configuration constants.
const (
	defaultSkillWeight        = 70
	defaultExperienceWeight   = 15
	defaultTrackRecordWeight  = 15
	defaultProjectsSaturation = 20
	defaultRatingSaturation   = 4.5
	minScoreValue             = 0
	maxScoreValue             = 100
)

// Breakdown holds the unrounded terms that make up a score.
type Breakdown struct {
	Skill       float64 `json:"skill"`
	Experience  float64 `json:"experience"`
	TrackRecord float64 `json:"track_record"`
	// MatchedSkills and RequiredSkills are counted after canonicalisation.
	MatchedSkills  int      `json:"matched_skills"`
	RequiredSkills int      `json:"required_skills"`
	Domains        []string `json:"domains,omitempty"`
	Total          int      `json:"total"`
}

// Calculator is a deterministic weighted scorer. It holds no mutable state
// after construction and is safe for concurrent use.
type Calculator struct {
	skillWeight        float64
	experienceWeight   float64
	trackRecordWeight  float64
	projectsSaturation float64
	ratingSaturation   float64
	vocabulary         map[string][]string
}

// New creates a Calculator with configuration options.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		skillWeight:        defaultSkillWeight,
		experienceWeight:   defaultExperienceWeight,
		trackRecordWeight:  defaultTrackRecordWeight,
		projectsSaturation: defaultProjectsSaturation,
		ratingSaturation:   defaultRatingSaturation,
		vocabulary:         map[string][]string{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Score returns the compatibility score in [0,100].
func (c *Calculator) Score(p profile.Normalized, l model.ProjectListing) int {
	return c.Breakdown(p, l).Total
}

// Breakdown computes each term of the score along with the final value.
func (c *Calculator) Breakdown(p profile.Normalized, l model.ProjectListing) Breakdown {
	var b Breakdown

	required := uniqueCanonical(l.RequiredSkills)
	b.RequiredSkills = len(required)
	for _, s := range required {
		if p.HasSkill(s) {
			b.MatchedSkills++
		}
	}
	if b.RequiredSkills > 0 {
		b.Skill = c.skillWeight * float64(b.MatchedSkills) / float64(b.RequiredSkills)
	}

	b.Domains = c.inferDomains(p.Tags(), l)
	if len(b.Domains) > 0 {
		b.Experience = c.experienceWeight
	}

	quality := math.Min(1, p.Rating/c.ratingSaturation)
	volume := math.Min(1, float64(p.Completed)/c.projectsSaturation)
	b.TrackRecord = c.trackRecordWeight * quality * volume

	b.Total = clamp(int(math.Round(b.Skill + b.Experience + b.TrackRecord)))
	return b
}

// inferDomains returns the tags whose keyword set occurs in the listing text.
func (c *Calculator) inferDomains(tags []string, l model.ProjectListing) []string {
	if len(tags) == 0 {
		return nil
	}
	text := profile.Canonical(l.Title + " " + l.Description)
	var out []string
	for _, tag := range tags {
		if containsAny(text, tag, c.vocabulary[tag]) {
			out = append(out, tag)
		}
	}
	return out
}

func containsAny(text, tag string, synonyms []string) bool {
	if strings.Contains(text, tag) {
		return true
	}
	for _, s := range synonyms {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

func uniqueCanonical(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		c := profile.Canonical(v)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func clamp(v int) int {
	switch {
	case v < minScoreValue:
		return minScoreValue
	case v > maxScoreValue:
		return maxScoreValue
	default:
		return v
	}
}
