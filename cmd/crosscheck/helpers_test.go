package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/fwojciec/crosscheck"
	main "github.com/fwojciec/crosscheck/cmd/crosscheck"
	cclipgloss "github.com/fwojciec/crosscheck/lipgloss"
	"github.com/fwojciec/crosscheck/mock"
	"github.com/fwojciec/crosscheck/orchestrate"
)

// discussionBody is scraped thread text; it must never appear in output.
const discussionBody = "SCRAPED-THREAD-BODY"

func webSearcher() *mock.WebSearcher {
	return &mock.WebSearcher{
		SearchWebFn: func(_ context.Context, _ string) ([]crosscheck.WebResult, error) {
			return []crosscheck.WebResult{
				{Title: "Coffee and health", Link: "https://hsph.example/coffee", Snippet: "Moderate intake."},
			}, nil
		},
	}
}

func discussionSearcher() *mock.DiscussionSearcher {
	return &mock.DiscussionSearcher{
		SearchDiscussionsFn: func(_ context.Context, _ string) (*crosscheck.DiscussionOutcome, error) {
			return &crosscheck.DiscussionOutcome{
				Threads: []crosscheck.DiscussionThread{
					{Title: "Quit coffee", Link: "https://reddit.example/r/1", Snippet: "Sleep improved."},
				},
				Content: discussionBody,
			}, nil
		},
	}
}

func conflictAnalyzer() *mock.ConflictAnalyzer {
	return &mock.ConflictAnalyzer{
		AnalyzeConflictsFn: func(_ context.Context, _ []crosscheck.WebResult, _ string) (*crosscheck.ConflictReport, error) {
			return &crosscheck.ConflictReport{
				Summary:   "Mostly aligned.",
				Conflicts: []string{"Anxiety effects"},
			}, nil
		},
	}
}

func failingWebSearcher() *mock.WebSearcher {
	return &mock.WebSearcher{
		SearchWebFn: func(_ context.Context, _ string) ([]crosscheck.WebResult, error) {
			return nil, errors.New("HTTP 500")
		},
	}
}

// testDeps returns dependencies wired to an orchestrator over the given
// services.
func testDeps(web crosscheck.WebSearcher, comparisons crosscheck.ComparisonService) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:          context.Background(),
		Stdout:       stdout,
		Stderr:       stderr,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Orchestrator: orchestrate.New(web, discussionSearcher(), conflictAnalyzer()),
		Comparisons:  comparisons,
		Renderer:     cclipgloss.NewRenderer(120, nil),
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) { return html, nil },
		},
	}
	return deps, stdout, stderr
}
