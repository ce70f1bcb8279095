package crosscheck_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/crosscheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", crosscheck.StatusIdle.String())
	assert.Equal(t, "loading", crosscheck.StatusLoading.String())
	assert.Equal(t, "ready", crosscheck.StatusReady.String())
	assert.Equal(t, "failed", crosscheck.StatusFailed.String())
	assert.Equal(t, "unknown", crosscheck.Status(42).String())
}

func TestZeroStateIsIdle(t *testing.T) {
	t.Parallel()

	var s crosscheck.State

	assert.Equal(t, crosscheck.StatusIdle, s.Status)
}

func TestLoading_HoldsNoData(t *testing.T) {
	t.Parallel()

	s := crosscheck.Loading("q")

	assert.Equal(t, crosscheck.StatusLoading, s.Status)
	assert.Equal(t, "q", s.Query)
	assert.Nil(t, s.WebResults)
	assert.Nil(t, s.Threads)
	assert.Nil(t, s.Report)
	assert.Empty(t, s.Message)
}

func TestFailed_UsesStaticMessage(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	s := crosscheck.Failed("q", crosscheck.StageWebSearch, cause)

	assert.Equal(t, crosscheck.StatusFailed, s.Status)
	assert.Equal(t, "Failed to fetch results. Please try again.", s.Message)
	assert.Equal(t, crosscheck.StageWebSearch, s.Stage)
	assert.Equal(t, cause, s.Err)
	assert.Nil(t, s.WebResults)
	assert.Nil(t, s.Threads)
	assert.Nil(t, s.Report)
}

func TestState_Clone(t *testing.T) {
	t.Parallel()

	orig := crosscheck.Ready("q",
		[]crosscheck.WebResult{{Title: "w1"}},
		[]crosscheck.DiscussionThread{{Title: "t1"}},
		&crosscheck.ConflictReport{Summary: "s", Agreements: []string{"a"}},
	)

	clone := orig.Clone()
	clone.WebResults[0].Title = "changed"
	clone.Threads[0].Title = "changed"
	clone.Report.Summary = "changed"
	clone.Report.Agreements[0] = "changed"

	assert.Equal(t, "w1", orig.WebResults[0].Title)
	assert.Equal(t, "t1", orig.Threads[0].Title)
	require.NotNil(t, orig.Report)
	assert.Equal(t, "s", orig.Report.Summary)
	assert.Equal(t, "a", orig.Report.Agreements[0])
}
