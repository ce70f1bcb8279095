package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/crosscheck"
	"github.com/fwojciec/crosscheck/mock"
	ccslog "github.com/fwojciec/crosscheck/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingComparisonService(t *testing.T) {
	t.Parallel()

	t.Run("logs save with assigned ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ComparisonService{
			CreateComparisonFn: func(ctx context.Context, c *crosscheck.Comparison) error {
				c.ID = "abc123"
				return nil
			},
		}

		svc := ccslog.NewLoggingComparisonService(inner, logger)
		err := svc.CreateComparison(context.Background(), &crosscheck.Comparison{Query: "coffee"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "save comparison")
		assert.Contains(t, output, "id=abc123")
	})

	t.Run("logs list count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ComparisonService{
			FindComparisonsFn: func(ctx context.Context, filter crosscheck.ComparisonFilter) ([]*crosscheck.Comparison, error) {
				return []*crosscheck.Comparison{{ID: "a"}, {ID: "b"}}, nil
			},
		}

		svc := ccslog.NewLoggingComparisonService(inner, logger)
		found, err := svc.FindComparisons(context.Background(), crosscheck.ComparisonFilter{})

		require.NoError(t, err)
		assert.Len(t, found, 2)
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs lookup errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ComparisonService{
			FindComparisonByIDFn: func(ctx context.Context, id string) (*crosscheck.Comparison, error) {
				return nil, crosscheck.Errorf(crosscheck.ENOTFOUND, "comparison not found")
			},
			DeleteComparisonFn: func(ctx context.Context, id string) error {
				return nil
			},
		}

		svc := ccslog.NewLoggingComparisonService(inner, logger)
		_, err := svc.FindComparisonByID(context.Background(), "missing")
		require.Error(t, err)
		require.NoError(t, svc.DeleteComparison(context.Background(), "other"))

		output := buf.String()
		assert.Contains(t, output, "find comparison")
		assert.Contains(t, output, "id=missing")
		assert.Contains(t, output, "code=not_found")
		assert.Contains(t, output, "delete comparison")
	})
}
