package mock

import (
	"context"

	"github.com/fwojciec/crosscheck"
)

var (
	_ crosscheck.WebSearcher        = (*WebSearcher)(nil)
	_ crosscheck.DiscussionSearcher = (*DiscussionSearcher)(nil)
	_ crosscheck.ConflictAnalyzer   = (*ConflictAnalyzer)(nil)
)

// WebSearcher is a mock implementation of crosscheck.WebSearcher.
type WebSearcher struct {
	SearchWebFn func(ctx context.Context, query string) ([]crosscheck.WebResult, error)
}

func (s *WebSearcher) SearchWeb(ctx context.Context, query string) ([]crosscheck.WebResult, error) {
	return s.SearchWebFn(ctx, query)
}

// DiscussionSearcher is a mock implementation of crosscheck.DiscussionSearcher.
type DiscussionSearcher struct {
	SearchDiscussionsFn func(ctx context.Context, query string) (*crosscheck.DiscussionOutcome, error)
}

func (s *DiscussionSearcher) SearchDiscussions(ctx context.Context, query string) (*crosscheck.DiscussionOutcome, error) {
	return s.SearchDiscussionsFn(ctx, query)
}

// ConflictAnalyzer is a mock implementation of crosscheck.ConflictAnalyzer.
type ConflictAnalyzer struct {
	AnalyzeConflictsFn func(ctx context.Context, web []crosscheck.WebResult, discussionContent string) (*crosscheck.ConflictReport, error)
}

func (a *ConflictAnalyzer) AnalyzeConflicts(ctx context.Context, web []crosscheck.WebResult, discussionContent string) (*crosscheck.ConflictReport, error) {
	return a.AnalyzeConflictsFn(ctx, web, discussionContent)
}
