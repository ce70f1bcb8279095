package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/crosscheck"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ crosscheck.ComparisonService = (*ComparisonService)(nil)

// ComparisonService implements crosscheck.ComparisonService using SQLite.
type ComparisonService struct {
	db *DB
}

// NewComparisonService creates a new ComparisonService.
func NewComparisonService(db *DB) *ComparisonService {
	return &ComparisonService{db: db}
}

// CreateComparison saves a new comparison.
func (s *ComparisonService) CreateComparison(ctx context.Context, c *crosscheck.Comparison) error {
	if err := c.Validate(); err != nil {
		return err
	}

	web, err := encodeJSON(nonNil(c.WebResults), "web_results")
	if err != nil {
		return err
	}
	threads, err := encodeJSON(nonNil(c.Threads), "threads")
	if err != nil {
		return err
	}
	report, err := encodeJSON(c.Report, "report")
	if err != nil {
		return err
	}

	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()
	c.ReportHash = hashContent(report)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO comparisons (id, query, web_results, threads, report, report_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.Query, web, threads, report, c.ReportHash, formatTime(c.CreatedAt))

	return err
}

// FindComparisonByID retrieves a comparison by ID.
func (s *ComparisonService) FindComparisonByID(ctx context.Context, id string) (*crosscheck.Comparison, error) {
	comparisons, err := s.FindComparisons(ctx, crosscheck.ComparisonFilter{ID: &id, Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(comparisons) == 0 {
		return nil, crosscheck.Errorf(crosscheck.ENOTFOUND, "comparison not found")
	}
	return comparisons[0], nil
}

// FindComparisons retrieves comparisons matching the filter, newest first.
// A Query filter matches case-insensitively anywhere in the saved query.
func (s *ComparisonService) FindComparisons(ctx context.Context, filter crosscheck.ComparisonFilter) ([]*crosscheck.Comparison, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, query, web_results, threads, report, report_hash, created_at FROM comparisons WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Query != nil {
		query.WriteString(" AND instr(lower(query), lower(?)) > 0")
		args = append(args, *filter.Query)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comparisons []*crosscheck.Comparison
	for rows.Next() {
		c, err := scanComparison(rows)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, c)
	}

	return comparisons, rows.Err()
}

// DeleteComparison permanently removes a comparison.
func (s *ComparisonService) DeleteComparison(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM comparisons WHERE id = ?", id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return crosscheck.Errorf(crosscheck.ENOTFOUND, "comparison not found")
	}
	return nil
}

func scanComparison(rows *sql.Rows) (*crosscheck.Comparison, error) {
	var c crosscheck.Comparison
	var web, threads, report, createdAt string

	if err := rows.Scan(&c.ID, &c.Query, &web, &threads, &report, &c.ReportHash, &createdAt); err != nil {
		return nil, err
	}

	if err := decodeJSON(web, &c.WebResults, "web_results"); err != nil {
		return nil, err
	}
	if err := decodeJSON(threads, &c.Threads, "threads"); err != nil {
		return nil, err
	}
	if err := decodeJSON(report, &c.Report, "report"); err != nil {
		return nil, err
	}

	var err error
	c.CreatedAt, err = parseTime(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// nonNil stores absent result lists as empty JSON arrays.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
