// Package repository provides project listing sources for the matcher.
package repository

import (
	"context"
	"fmt"
	"math"

	"github.com/okian/gigmatch/internal/domain/filter"
	"github.com/okian/gigmatch/internal/domain/model"
)

// Filter narrows the listing pool before scoring. Nil bounds are unset.
type Filter struct {
	Text      string
	MinBudget *float64
	MaxBudget *float64
}

// FilterFromQuery copies the pre-scoring part of q.
func FilterFromQuery(q model.Query) Filter {
	return Filter{Text: q.Text, MinBudget: q.MinBudget, MaxBudget: q.MaxBudget}
}

// Validate rejects negative or NaN budget bounds. Inverted bounds are
// allowed: the overlap test simply applies each bound on its own.
func (f Filter) Validate() error {
	for _, b := range []*float64{f.MinBudget, f.MaxBudget} {
		if b != nil && (*b < 0 || math.IsNaN(*b)) {
			return fmt.Errorf("%w: budget bound %v", ErrInvalidFilter, *b)
		}
	}
	return nil
}

// Apply returns the listings matching f, in input order.
func (f Filter) Apply(listings []model.ProjectListing) []model.ProjectListing {
	return filter.Budget(filter.Text(listings, f.Text), f.MinBudget, f.MaxBudget)
}

// ProjectRepository supplies the candidate listing pool for one search.
type ProjectRepository interface {
	// ListProjects returns the listings matching f. Implementations may
	// pre-filter; the engine applies the same filter again.
	ListProjects(ctx context.Context, f Filter) ([]model.ProjectListing, error)
}
