package mock

import (
	"context"

	"github.com/fwojciec/crosscheck"
)

var _ crosscheck.ComparisonService = (*ComparisonService)(nil)

// ComparisonService is a mock implementation of crosscheck.ComparisonService.
type ComparisonService struct {
	CreateComparisonFn   func(ctx context.Context, c *crosscheck.Comparison) error
	FindComparisonByIDFn func(ctx context.Context, id string) (*crosscheck.Comparison, error)
	FindComparisonsFn    func(ctx context.Context, filter crosscheck.ComparisonFilter) ([]*crosscheck.Comparison, error)
	DeleteComparisonFn   func(ctx context.Context, id string) error
}

func (s *ComparisonService) CreateComparison(ctx context.Context, c *crosscheck.Comparison) error {
	return s.CreateComparisonFn(ctx, c)
}

func (s *ComparisonService) FindComparisonByID(ctx context.Context, id string) (*crosscheck.Comparison, error) {
	return s.FindComparisonByIDFn(ctx, id)
}

func (s *ComparisonService) FindComparisons(ctx context.Context, filter crosscheck.ComparisonFilter) ([]*crosscheck.Comparison, error) {
	return s.FindComparisonsFn(ctx, filter)
}

func (s *ComparisonService) DeleteComparison(ctx context.Context, id string) error {
	return s.DeleteComparisonFn(ctx, id)
}

var _ crosscheck.ComparisonExporter = (*ComparisonExporter)(nil)

// ComparisonExporter is a mock implementation of crosscheck.ComparisonExporter.
type ComparisonExporter struct {
	SaveFn   func(ctx context.Context, c *crosscheck.Comparison) error
	CommitFn func() error
	AbortFn  func() error
}

func (e *ComparisonExporter) Save(ctx context.Context, c *crosscheck.Comparison) error {
	return e.SaveFn(ctx, c)
}

func (e *ComparisonExporter) Commit() error {
	return e.CommitFn()
}

func (e *ComparisonExporter) Abort() error {
	return e.AbortFn()
}
