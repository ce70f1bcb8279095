package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/crosscheck"
	main "github.com/fwojciec/crosscheck/cmd/crosscheck"
	"github.com/fwojciec/crosscheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func savedComparison() *crosscheck.Comparison {
	return &crosscheck.Comparison{
		ID:         "cmp-1",
		Query:      "Is coffee good?",
		CreatedAt:  time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		WebResults: []crosscheck.WebResult{{Title: "Coffee and health", Link: "https://hsph.example/coffee"}},
		Threads:    []crosscheck.DiscussionThread{{Title: "Quit coffee", Link: "https://reddit.example/r/1"}},
		Report:     crosscheck.ConflictReport{Summary: "Mostly aligned."},
	}
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders saved comparison", func(t *testing.T) {
		t.Parallel()

		comparisons := &mock.ComparisonService{
			FindComparisonByIDFn: func(_ context.Context, id string) (*crosscheck.Comparison, error) {
				assert.Equal(t, "cmp-1", id)
				return savedComparison(), nil
			},
		}
		deps, stdout, _ := testDeps(webSearcher(), comparisons)

		err := (&main.ShowCmd{ID: "cmp-1", Format: "text"}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Is coffee good?")
		assert.Contains(t, out, "Coffee and health")
		assert.Contains(t, out, "Quit coffee")
		assert.Contains(t, out, "Mostly aligned.")
	})

	t.Run("includes id and time in json", func(t *testing.T) {
		t.Parallel()

		comparisons := &mock.ComparisonService{
			FindComparisonByIDFn: func(_ context.Context, _ string) (*crosscheck.Comparison, error) {
				return savedComparison(), nil
			},
		}
		deps, stdout, _ := testDeps(webSearcher(), comparisons)

		err := (&main.ShowCmd{ID: "cmp-1", Format: "json"}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, `"id": "cmp-1"`)
		assert.Contains(t, out, `"createdAt": "2026-10-18T09:00:00Z"`)
	})

	t.Run("reports unknown id", func(t *testing.T) {
		t.Parallel()

		comparisons := &mock.ComparisonService{
			FindComparisonByIDFn: func(_ context.Context, _ string) (*crosscheck.Comparison, error) {
				return nil, crosscheck.Errorf(crosscheck.ENOTFOUND, "comparison not found")
			},
		}
		deps, stdout, stderr := testDeps(webSearcher(), comparisons)

		err := (&main.ShowCmd{ID: "missing", Format: "text"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, crosscheck.ENOTFOUND, crosscheck.ErrorCode(err))
		assert.Contains(t, stderr.String(), `comparison "missing" not found`)
		assert.Empty(t, stdout.String())
	})
}
