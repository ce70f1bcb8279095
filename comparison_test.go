package crosscheck_test

import (
	"testing"

	"github.com/fwojciec/crosscheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComparison(t *testing.T) {
	t.Parallel()

	t.Run("captures ready state", func(t *testing.T) {
		t.Parallel()

		s := crosscheck.Ready("coffee",
			[]crosscheck.WebResult{{Title: "Mayo Clinic", Link: "https://mayoclinic.org"}},
			[]crosscheck.DiscussionThread{{Title: "r/coffee", Link: "https://reddit.com/r/coffee/1"}},
			&crosscheck.ConflictReport{Summary: "mostly agree"},
		)

		c, err := crosscheck.NewComparison(s)

		require.NoError(t, err)
		assert.Equal(t, "coffee", c.Query)
		assert.Equal(t, s.WebResults, c.WebResults)
		assert.Equal(t, s.Threads, c.Threads)
		assert.Equal(t, "mostly agree", c.Report.Summary)
		assert.Empty(t, c.ID)
	})

	t.Run("rejects non-ready state", func(t *testing.T) {
		t.Parallel()

		_, err := crosscheck.NewComparison(crosscheck.Loading("coffee"))

		require.Error(t, err)
		assert.Equal(t, crosscheck.EINVALID, crosscheck.ErrorCode(err))
		assert.Contains(t, crosscheck.ErrorMessage(err), "loading")
	})
}

func TestComparison_State(t *testing.T) {
	t.Parallel()

	c := &crosscheck.Comparison{
		Query:      "coffee",
		WebResults: []crosscheck.WebResult{{Title: "w"}},
		Threads:    []crosscheck.DiscussionThread{{Title: "t"}},
		Report:     crosscheck.ConflictReport{Conflicts: []string{"dose"}},
	}

	s := c.State()

	assert.Equal(t, crosscheck.StatusReady, s.Status)
	assert.Equal(t, "coffee", s.Query)
	require.NotNil(t, s.Report)
	assert.Equal(t, []string{"dose"}, s.Report.Conflicts)
}

func TestComparison_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&crosscheck.Comparison{Query: "coffee"}).Validate())

	err := (&crosscheck.Comparison{Query: "  "}).Validate()
	require.Error(t, err)
	assert.Equal(t, crosscheck.EINVALID, crosscheck.ErrorCode(err))
}
