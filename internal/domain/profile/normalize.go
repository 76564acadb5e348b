// Package profile converts raw freelancer profiles into the canonical form
// used for skill and domain comparison.
package profile

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/okian/gigmatch/internal/domain/model"
)

// Rating bounds accepted for a freelancer profile.
const (
	minRating = 0
	maxRating = 5
)

// Normalized is the canonical, comparison-ready view of a profile.
// It is immutable once built and safe to share between goroutines.
type Normalized struct {
	skills    map[string]struct{}
	skillList []string
	tags      map[string]struct{}
	tagList   []string
	Completed int
	Rating    float64
}

// Canonical trims, composes (NFC) and lower-cases s. Every case-insensitive
// comparison of skills and tags goes through this function.
func Canonical(s string) string {
	return Fold(strings.TrimSpace(s))
}

// Fold composes (NFC) and lower-cases s without trimming it.
func Fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// Normalize validates p and returns its canonical form. Skills and experience
// tags are canonicalised and deduplicated; blank entries are dropped.
func Normalize(p model.FreelancerProfile) (Normalized, error) {
	if math.IsNaN(p.Rating) || p.Rating < minRating || p.Rating > maxRating {
		return Normalized{}, fmt.Errorf("%w: rating %v outside [%d,%d]", ErrInvalidProfile, p.Rating, minRating, maxRating)
	}
	if p.CompletedProjects < 0 {
		return Normalized{}, fmt.Errorf("%w: negative completed projects %d", ErrInvalidProfile, p.CompletedProjects)
	}

	n := Normalized{
		Completed: p.CompletedProjects,
		Rating:    p.Rating,
	}
	n.skills, n.skillList = canonicalSet(p.Skills)
	n.tags, n.tagList = canonicalSet(p.ExperienceTags)
	return n, nil
}

// canonicalSet returns the deduplicated canonical values in first-seen order.
func canonicalSet(values []string) (map[string]struct{}, []string) {
	set := make(map[string]struct{}, len(values))
	list := make([]string, 0, len(values))
	for _, v := range values {
		c := Canonical(v)
		if c == "" {
			continue
		}
		if _, ok := set[c]; ok {
			continue
		}
		set[c] = struct{}{}
		list = append(list, c)
	}
	return set, list
}

// HasSkill reports whether the profile lists skill, compared canonically.
func (n Normalized) HasSkill(skill string) bool {
	_, ok := n.skills[Canonical(skill)]
	return ok
}

// HasTag reports whether the profile carries the experience tag.
func (n Normalized) HasTag(tag string) bool {
	_, ok := n.tags[Canonical(tag)]
	return ok
}

// Skills returns the canonical skills in first-seen order.
func (n Normalized) Skills() []string {
	return append([]string(nil), n.skillList...)
}

// Tags returns the canonical experience tags in first-seen order.
func (n Normalized) Tags() []string {
	return append([]string(nil), n.tagList...)
}
