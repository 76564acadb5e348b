// Package model contains domain models passed between layers.
package model

// FreelancerProfile is the raw profile supplied by a profile provider for
// a single query. Skills and experience tags are compared case-insensitively.
type FreelancerProfile struct {
	Skills            []string `json:"skills" koanf:"skills"`
	ExperienceTags    []string `json:"experience_tags" koanf:"experience_tags"` // domain labels, e.g. "E-commerce"
	CompletedProjects int      `json:"completed_projects" koanf:"completed_projects" validate:"gte=0"`
	Rating            float64  `json:"rating" koanf:"rating" validate:"gte=0,lte=5"`
}
