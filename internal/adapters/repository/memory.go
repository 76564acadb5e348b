package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/pkg/metrics"
)

// MemoryStore is an in-memory listing pool guarded by a RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	listings []model.ProjectListing
}

// NewMemoryStore creates a store with configuration options.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{}
	for _, opt := range opts {
		opt(s)
	}
	metrics.SetCatalogListings(len(s.listings))
	return s
}

// Add appends listings to the pool.
func (s *MemoryStore) Add(listings ...model.ProjectListing) {
	s.mu.Lock()
	s.listings = append(s.listings, listings...)
	n := len(s.listings)
	s.mu.Unlock()
	metrics.SetCatalogListings(n)
}

// Replace swaps the whole pool.
func (s *MemoryStore) Replace(listings []model.ProjectListing) {
	s.mu.Lock()
	s.listings = slices.Clone(listings)
	n := len(s.listings)
	s.mu.Unlock()
	metrics.SetCatalogListings(n)
}

// Count returns the pool size.
func (s *MemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}

// ListProjects returns a copy of the listings matching f.
func (s *MemoryStore) ListProjects(ctx context.Context, f Filter) ([]model.ProjectListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	s.mu.RLock()
	out := f.Apply(s.listings)
	s.mu.RUnlock()
	metrics.RecordRepositoryQuery("memory", float64(time.Since(start).Microseconds())/1000)
	return out, nil
}

// Page serves the pool in fixed-size pages; the cursor is the next offset.
func (s *MemoryStore) Page(ctx context.Context, f Filter, cursor string, size int) ([]model.ProjectListing, string, error) {
	all, err := s.ListProjects(ctx, f)
	if err != nil {
		return nil, "", err
	}
	return pageSlice(all, cursor, size)
}
