package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/okian/gigmatch/internal/domain/dedupe"
	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/pkg/metrics"
)

// PageSource serves listings one page at a time. An empty next cursor marks
// the last page.
type PageSource interface {
	Page(ctx context.Context, f Filter, cursor string, size int) (items []model.ProjectListing, next string, err error)
}

// Materialize drains src into one pool. Listings whose id was already
// returned by an earlier page are dropped.
func Materialize(ctx context.Context, src PageSource, f Filter, size int, d dedupe.Deduper) ([]model.ProjectListing, error) {
	if d == nil {
		d = dedupe.New()
	}
	var (
		out    []model.ProjectListing
		cursor string
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		items, next, err := src.Page(ctx, f, cursor, size)
		if err != nil {
			return nil, err
		}
		for _, l := range items {
			if d.Seen(l.ID) {
				metrics.RecordDuplicateListing()
				continue
			}
			out = append(out, l)
		}
		if next == "" || next == cursor {
			break
		}
		cursor = next
	}
	if out == nil {
		out = []model.ProjectListing{}
	}
	return out, nil
}

// pageSlice returns the page of all starting at the offset in cursor.
func pageSlice(all []model.ProjectListing, cursor string, size int) ([]model.ProjectListing, string, error) {
	offset := 0
	if cursor != "" {
		n, err := strconv.Atoi(cursor)
		if err != nil || n < 0 {
			return nil, "", fmt.Errorf("%w: bad cursor %q", ErrInvalidFilter, cursor)
		}
		offset = n
	}
	if size <= 0 {
		size = len(all)
	}
	if offset >= len(all) {
		return nil, "", nil
	}
	end := min(offset+size, len(all))
	next := ""
	if end < len(all) {
		next = strconv.Itoa(end)
	}
	return all[offset:end], next, nil
}
