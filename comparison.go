package crosscheck

import (
	"context"
	"time"
)

// Comparison is a Ready state saved to local history.
type Comparison struct {
	ID         string             `json:"id"`
	Query      string             `json:"query"`
	WebResults []WebResult        `json:"webResults"`
	Threads    []DiscussionThread `json:"threads"`
	Report     ConflictReport     `json:"report"`
	ReportHash string             `json:"reportHash"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// NewComparison captures a Ready state for saving.
// Returns EINVALID if the state is not Ready.
func NewComparison(s State) (*Comparison, error) {
	if s.Status != StatusReady {
		return nil, Errorf(EINVALID, "cannot save a %s query", s.Status)
	}
	s = s.Clone()
	c := &Comparison{
		Query:      s.Query,
		WebResults: s.WebResults,
		Threads:    s.Threads,
	}
	if s.Report != nil {
		c.Report = *s.Report
	}
	return c, nil
}

// State returns the comparison as a Ready state for rendering.
func (c *Comparison) State() State {
	report := c.Report
	return Ready(c.Query, c.WebResults, c.Threads, &report).Clone()
}

// Validate returns an error if the comparison contains invalid fields.
func (c *Comparison) Validate() error {
	if _, ok := NormalizeQuery(c.Query); !ok {
		return Errorf(EINVALID, "comparison query required")
	}
	return nil
}

// ComparisonService represents a service for managing saved comparisons.
type ComparisonService interface {
	// CreateComparison saves a new comparison and sets its ID, hash and
	// creation time.
	CreateComparison(ctx context.Context, c *Comparison) error

	// FindComparisonByID retrieves a comparison by ID.
	// Returns ENOTFOUND if comparison does not exist.
	FindComparisonByID(ctx context.Context, id string) (*Comparison, error)

	// FindComparisons retrieves comparisons matching the filter, newest first.
	FindComparisons(ctx context.Context, filter ComparisonFilter) ([]*Comparison, error)

	// DeleteComparison permanently removes a comparison.
	// Returns ENOTFOUND if comparison does not exist.
	DeleteComparison(ctx context.Context, id string) error
}

// ComparisonFilter represents a filter for FindComparisons.
type ComparisonFilter struct {
	ID    *string `json:"id"`
	Query *string `json:"query"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ComparisonExporter writes comparisons out as documents. Nothing is
// published until Commit; Abort discards everything saved so far.
// Implementations must not replace a destination they did not create.
type ComparisonExporter interface {
	Save(ctx context.Context, c *Comparison) error
	Commit() error
	Abort() error
}
