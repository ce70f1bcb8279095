// Package slog provides logging decorators for crosscheck services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/crosscheck"
)

var (
	_ crosscheck.WebSearcher        = (*LoggingWebSearcher)(nil)
	_ crosscheck.DiscussionSearcher = (*LoggingDiscussionSearcher)(nil)
	_ crosscheck.ConflictAnalyzer   = (*LoggingConflictAnalyzer)(nil)
)

// LoggingWebSearcher wraps a WebSearcher with debug logging.
type LoggingWebSearcher struct {
	next   crosscheck.WebSearcher
	logger *slog.Logger
}

// NewLoggingWebSearcher creates a new LoggingWebSearcher.
func NewLoggingWebSearcher(next crosscheck.WebSearcher, logger *slog.Logger) *LoggingWebSearcher {
	return &LoggingWebSearcher{next: next, logger: logger}
}

// SearchWeb delegates to the wrapped searcher and logs the operation.
func (s *LoggingWebSearcher) SearchWeb(ctx context.Context, query string) (results []crosscheck.WebResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("web search",
			"query", query,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchWeb(ctx, query)
}

// LoggingDiscussionSearcher wraps a DiscussionSearcher with debug logging.
// Discussion content is logged by size only.
type LoggingDiscussionSearcher struct {
	next   crosscheck.DiscussionSearcher
	logger *slog.Logger
}

// NewLoggingDiscussionSearcher creates a new LoggingDiscussionSearcher.
func NewLoggingDiscussionSearcher(next crosscheck.DiscussionSearcher, logger *slog.Logger) *LoggingDiscussionSearcher {
	return &LoggingDiscussionSearcher{next: next, logger: logger}
}

// SearchDiscussions delegates to the wrapped searcher and logs the operation.
func (s *LoggingDiscussionSearcher) SearchDiscussions(ctx context.Context, query string) (outcome *crosscheck.DiscussionOutcome, err error) {
	defer func(begin time.Time) {
		var threads, bytes int
		if outcome != nil {
			threads = len(outcome.Threads)
			bytes = len(outcome.Content)
		}
		s.logger.Info("discussion search",
			"query", query,
			"count", threads,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchDiscussions(ctx, query)
}

// LoggingConflictAnalyzer wraps a ConflictAnalyzer with debug logging.
type LoggingConflictAnalyzer struct {
	next   crosscheck.ConflictAnalyzer
	logger *slog.Logger
}

// NewLoggingConflictAnalyzer creates a new LoggingConflictAnalyzer.
func NewLoggingConflictAnalyzer(next crosscheck.ConflictAnalyzer, logger *slog.Logger) *LoggingConflictAnalyzer {
	return &LoggingConflictAnalyzer{next: next, logger: logger}
}

// AnalyzeConflicts delegates to the wrapped analyzer and logs the operation.
func (a *LoggingConflictAnalyzer) AnalyzeConflicts(ctx context.Context, web []crosscheck.WebResult, discussionContent string) (report *crosscheck.ConflictReport, err error) {
	defer func(begin time.Time) {
		var conflicts int
		if report != nil {
			conflicts = len(report.Conflicts)
		}
		a.logger.Info("conflict analysis",
			"web", len(web),
			"bytes", len(discussionContent),
			"conflicts", conflicts,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.AnalyzeConflicts(ctx, web, discussionContent)
}
