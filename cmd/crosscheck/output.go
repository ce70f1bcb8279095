package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/crosscheck"
)

// Output formats.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatJSON     = "json"
)

// comparisonJSON is the json output format. Discussion content is not
// part of it.
type comparisonJSON struct {
	ID         string                        `json:"id,omitempty"`
	Query      string                        `json:"query"`
	CreatedAt  *time.Time                    `json:"createdAt,omitempty"`
	WebResults []crosscheck.WebResult        `json:"webResults"`
	Threads    []crosscheck.DiscussionThread `json:"threads"`
	Report     crosscheck.ConflictReport     `json:"report"`
}

// writeState writes a Ready state in the requested format. saved is the
// stored comparison, if any, and contributes its ID and creation time.
func writeState(w io.Writer, deps *Dependencies, s crosscheck.State, format string, saved *crosscheck.Comparison) error {
	switch format {
	case formatMarkdown:
		_, err := fmt.Fprint(w, crosscheck.FormatMarkdown(s, deps.Converter))
		return err
	case formatJSON:
		out := comparisonJSON{
			Query:      s.Query,
			WebResults: s.WebResults,
			Threads:    s.Threads,
		}
		if out.WebResults == nil {
			out.WebResults = []crosscheck.WebResult{}
		}
		if out.Threads == nil {
			out.Threads = []crosscheck.DiscussionThread{}
		}
		if s.Report != nil {
			out.Report = *s.Report
		}
		if saved != nil {
			out.ID = saved.ID
			createdAt := saved.CreatedAt
			out.CreatedAt = &createdAt
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		_, err := fmt.Fprintln(w, deps.Renderer.Render(s))
		return err
	}
}
