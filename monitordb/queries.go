package monitordb

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("monitordb: not found")
	// ErrDuplicateWebsite is returned when registering a URL that is already monitored.
	ErrDuplicateWebsite = errors.New("monitordb: website already registered")
)

// DBTX is the minimal query interface needed by Queries. Both *pgxpool.Pool
// and the pgxmock pool satisfy it.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Queries provides typed access to the monitoring tables
type Queries struct {
	db DBTX
}

// New creates a Queries instance backed by the given connection
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// ListWebsites returns every registered website ordered by URL.
func (q *Queries) ListWebsites(ctx context.Context) ([]Website, error) {
	query, args, err := squirrel.Select("url", "email", "phone").
		From("websites").
		OrderBy("url").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var websites []Website
	if err := pgxscan.Select(ctx, q.db, &websites, query, args...); err != nil {
		return nil, fmt.Errorf("scanning websites: %w", err)
	}
	return websites, nil
}

// GetWebsite returns the website registered under the given URL.
func (q *Queries) GetWebsite(ctx context.Context, url string) (*Website, error) {
	query, args, err := squirrel.Select("url", "email", "phone").
		From("websites").
		Where(squirrel.Eq{"url": url}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var website Website
	if err := pgxscan.Get(ctx, q.db, &website, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning website: %w", err)
	}
	return &website, nil
}

// AddWebsite registers a new website for monitoring.
func (q *Queries) AddWebsite(ctx context.Context, website Website) error {
	query, args, err := squirrel.Insert("websites").
		Columns("url", "email", "phone").
		Values(website.URL, website.Email, website.Phone).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building insert query: %w", err)
	}

	if _, err := q.db.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateWebsite
		}
		return fmt.Errorf("inserting website: %w", err)
	}
	return nil
}

// InsertSnapshot stores the scraped content for a URL and returns the stored row.
func (q *Queries) InsertSnapshot(ctx context.Context, url, content string) (*Snapshot, error) {
	query, args, err := squirrel.Insert("website_snapshots").
		Columns("url", "scraped_content").
		Values(url, content).
		Suffix("RETURNING id, url, scraped_content, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building insert query: %w", err)
	}

	var snapshot Snapshot
	if err := pgxscan.Get(ctx, q.db, &snapshot, query, args...); err != nil {
		return nil, fmt.Errorf("inserting snapshot: %w", err)
	}
	return &snapshot, nil
}

// RecentSnapshots returns up to limit snapshots for a URL, newest first.
func (q *Queries) RecentSnapshots(ctx context.Context, url string, limit int) ([]Snapshot, error) {
	query, args, err := squirrel.Select("id", "url", "scraped_content", "created_at").
		From("website_snapshots").
		Where(squirrel.Eq{"url": url}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select query: %w", err)
	}

	var snapshots []Snapshot
	if err := pgxscan.Select(ctx, q.db, &snapshots, query, args...); err != nil {
		return nil, fmt.Errorf("scanning snapshots: %w", err)
	}
	return snapshots, nil
}
