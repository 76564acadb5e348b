package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okian/gigmatch/internal/domain/dedupe"
	"github.com/okian/gigmatch/internal/domain/model"
	"github.com/okian/gigmatch/pkg/logger"
	"github.com/okian/gigmatch/pkg/metrics"
)

const defaultPageSize = 500

// Schema creates the projects table read by PostgresStore.
const Schema = `
CREATE TABLE IF NOT EXISTS projects (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL DEFAULT '',
	description     TEXT NOT NULL DEFAULT '',
	required_skills TEXT[] NOT NULL DEFAULT '{}',
	budget_min      DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (budget_min >= 0),
	budget_max      DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (budget_max >= budget_min),
	deadline_label  TEXT NOT NULL DEFAULT '',
	client_name     TEXT NOT NULL DEFAULT '',
	client_rating   DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (client_rating BETWEEN 0 AND 5),
	client_location TEXT NOT NULL DEFAULT ''
)`

const selectColumns = `id, title, description, required_skills, budget_min, budget_max,
	deadline_label, client_name, client_rating, client_location`

// PostgresStore reads listings from a projects table using keyset pages.
type PostgresStore struct {
	pool       *pgxpool.Pool
	pageSize   int
	newDeduper func() dedupe.Deduper
	log        logger.Logger
}

// Connect opens a pool to databaseURL and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string, opts ...PostgresOption) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return NewPostgresStore(pool, opts...), nil
}

// NewPostgresStore wraps an existing pool.
func NewPostgresStore(pool *pgxpool.Pool, opts ...PostgresOption) *PostgresStore {
	s := &PostgresStore{
		pool:       pool,
		pageSize:   defaultPageSize,
		newDeduper: func() dedupe.Deduper { return dedupe.New() },
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Close closes the connection pool.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// EnsureSchema creates the projects table if it does not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Upsert inserts or replaces listings in one transaction.
func (s *PostgresStore) Upsert(ctx context.Context, listings []model.ProjectListing) error {
	if err := ValidateListings(listings); err != nil {
		return err
	}
	batch := &pgx.Batch{}
	for _, l := range listings {
		skills := l.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		batch.Queue(`INSERT INTO projects (`+selectColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (id) DO UPDATE SET
				title = $2, description = $3, required_skills = $4,
				budget_min = $5, budget_max = $6, deadline_label = $7,
				client_name = $8, client_rating = $9, client_location = $10`,
			l.ID, l.Title, l.Description, skills, l.BudgetMin, l.BudgetMax,
			l.DeadlineLabel, l.Client.Name, l.Client.Rating, l.Client.Location,
		)
	}
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrQuery, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%w: upsert: %w", ErrQuery, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrQuery, err)
	}
	return nil
}

// ListProjects drains every page matching f into one pool.
func (s *PostgresStore) ListProjects(ctx context.Context, f Filter) ([]model.ProjectListing, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	out, err := Materialize(ctx, s, f, s.pageSize, s.newDeduper())
	metrics.RecordRepositoryQuery("postgres", float64(time.Since(start).Microseconds())/1000)
	if err != nil {
		return nil, err
	}
	s.log.Debug(ctx, "listed projects", logger.Int("count", len(out)), logger.Duration("took", time.Since(start)))
	return out, nil
}

// Page fetches one keyset page ordered by id. The cursor is the last id of
// the previous page.
func (s *PostgresStore) Page(ctx context.Context, f Filter, cursor string, size int) ([]model.ProjectListing, string, error) {
	if size <= 0 {
		size = s.pageSize
	}
	sql, args := buildPageQuery(f, cursor, size)
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrQuery, err)
	}
	defer rows.Close()

	var out []model.ProjectListing
	for rows.Next() {
		var l model.ProjectListing
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Description, &l.RequiredSkills, &l.BudgetMin, &l.BudgetMax,
			&l.DeadlineLabel, &l.Client.Name, &l.Client.Rating, &l.Client.Location,
		); err != nil {
			return nil, "", fmt.Errorf("%w: scan: %w", ErrQuery, err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrQuery, err)
	}

	next := ""
	if len(out) == size {
		next = out[len(out)-1].ID
	}
	return out, next, nil
}

// buildPageQuery renders the parameterised page query for f.
func buildPageQuery(f Filter, cursor string, size int) (string, []any) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if f.Text != "" {
		p := arg("%" + escapeLike(f.Text) + "%")
		where = append(where, fmt.Sprintf(
			"(title ILIKE %[1]s OR description ILIKE %[1]s OR EXISTS (SELECT 1 FROM unnest(required_skills) AS s WHERE s ILIKE %[1]s))", p))
	}
	if f.MinBudget != nil {
		where = append(where, "budget_max >= "+arg(*f.MinBudget))
	}
	if f.MaxBudget != nil {
		where = append(where, "budget_min <= "+arg(*f.MaxBudget))
	}
	if cursor != "" {
		where = append(where, "id > "+arg(cursor))
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(selectColumns)
	b.WriteString(" FROM projects")
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY id LIMIT ")
	b.WriteString(arg(size))
	return b.String(), args
}

// escapeLike escapes LIKE metacharacters so text matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
