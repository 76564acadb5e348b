package repository

import (
	"github.com/okian/gigmatch/internal/domain/dedupe"
	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/pkg/logger"
)

// MemoryOption applies a configuration option to the MemoryStore.
type MemoryOption func(*MemoryStore)

// WithListings seeds the store.
func WithListings(listings []model.ProjectListing) MemoryOption {
	return func(s *MemoryStore) {
		s.listings = append(s.listings, listings...)
	}
}

// PostgresOption applies a configuration option to the PostgresStore.
type PostgresOption func(*PostgresStore)

// WithPageSize sets how many rows one keyset page fetches.
func WithPageSize(n int) PostgresOption {
	return func(s *PostgresStore) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithDedupeCapacity bounds the id cache used while draining pages.
func WithDedupeCapacity(n int) PostgresOption {
	return func(s *PostgresStore) {
		s.newDeduper = func() dedupe.Deduper { return dedupe.New(dedupe.WithCapacity(n)) }
	}
}

// WithLogger sets the logger used by the PostgresStore.
func WithLogger(l logger.Logger) PostgresOption {
	return func(s *PostgresStore) {
		if l != nil {
			s.log = l
		}
	}
}
