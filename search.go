package crosscheck

import "context"

// WebResult is a single item returned by the general web search provider.
type WebResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// DiscussionThread is a single community discussion returned by the
// discussion search provider.
type DiscussionThread struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// DiscussionOutcome is the result of a discussion search.
// Content is the scraped text of the top threads. It is input for conflict
// analysis only and is never rendered.
type DiscussionOutcome struct {
	Threads []DiscussionThread
	Content string
}

// WebSearcher searches the general web.
type WebSearcher interface {
	// SearchWeb returns web results for the query in provider order.
	SearchWeb(ctx context.Context, query string) ([]WebResult, error)
}

// DiscussionSearcher searches community discussions.
type DiscussionSearcher interface {
	// SearchDiscussions returns matching threads in provider order along
	// with the scraped text of the most relevant ones.
	SearchDiscussions(ctx context.Context, query string) (*DiscussionOutcome, error)
}

// ConflictAnalyzer compares web results against discussion content.
type ConflictAnalyzer interface {
	// AnalyzeConflicts returns a report of agreements, conflicts and
	// insights unique to either side.
	AnalyzeConflicts(ctx context.Context, web []WebResult, discussionContent string) (*ConflictReport, error)
}

// ConflictReport is the structured comparison of web and discussion content.
type ConflictReport struct {
	Summary            string   `json:"summary"`
	Agreements         []string `json:"agreements"`
	Conflicts          []string `json:"conflicts"`
	UniqueToWeb        []string `json:"uniqueToWeb"`
	UniqueToDiscussion []string `json:"uniqueToDiscussion"`
}

// IsEmpty reports whether the report carries no findings at all.
func (r *ConflictReport) IsEmpty() bool {
	return r == nil || (r.Summary == "" &&
		len(r.Agreements) == 0 &&
		len(r.Conflicts) == 0 &&
		len(r.UniqueToWeb) == 0 &&
		len(r.UniqueToDiscussion) == 0)
}
