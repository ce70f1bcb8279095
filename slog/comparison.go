package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/crosscheck"
)

var _ crosscheck.ComparisonService = (*LoggingComparisonService)(nil)

// LoggingComparisonService wraps a ComparisonService with debug logging.
type LoggingComparisonService struct {
	next   crosscheck.ComparisonService
	logger *slog.Logger
}

func NewLoggingComparisonService(next crosscheck.ComparisonService, logger *slog.Logger) *LoggingComparisonService {
	return &LoggingComparisonService{next: next, logger: logger}
}

func (s *LoggingComparisonService) CreateComparison(ctx context.Context, c *crosscheck.Comparison) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save comparison",
			"id", c.ID,
			"query", c.Query,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateComparison(ctx, c)
}

func (s *LoggingComparisonService) FindComparisonByID(ctx context.Context, id string) (c *crosscheck.Comparison, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find comparison",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindComparisonByID(ctx, id)
}

func (s *LoggingComparisonService) FindComparisons(ctx context.Context, filter crosscheck.ComparisonFilter) (comparisons []*crosscheck.Comparison, err error) {
	defer func(begin time.Time) {
		s.logger.Info("list comparisons",
			"count", len(comparisons),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindComparisons(ctx, filter)
}

func (s *LoggingComparisonService) DeleteComparison(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete comparison",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteComparison(ctx, id)
}
