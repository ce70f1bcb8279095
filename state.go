package crosscheck

import "slices"

// FailedMessage is the only failure text shown to users. Which call failed
// and why is kept on State for logging but never displayed.
const FailedMessage = "Failed to fetch results. Please try again."

// Status is the lifecycle position of the current query.
type Status int

// Status constants.
const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Stage identifies the outbound call a failed query broke on.
type Stage string

// Stage constants.
const (
	StageWebSearch        Stage = "web_search"
	StageDiscussionSearch Stage = "discussion_search"
	StageAnalysis         Stage = "analysis"
)

// State is a snapshot of where the current query is in its lifecycle.
//
// WebResults, Threads and Report are set only when Status is StatusReady.
// Message, Stage and Err are set only when Status is StatusFailed.
type State struct {
	Status Status
	Query  string

	WebResults []WebResult
	Threads    []DiscussionThread
	Report     *ConflictReport

	Message string
	Stage   Stage
	Err     error
}

// Loading returns the state entered when query is submitted.
func Loading(query string) State {
	return State{Status: StatusLoading, Query: query}
}

// Ready returns the state of a query whose searches and analysis succeeded.
func Ready(query string, web []WebResult, threads []DiscussionThread, report *ConflictReport) State {
	return State{
		Status:     StatusReady,
		Query:      query,
		WebResults: web,
		Threads:    threads,
		Report:     report,
	}
}

// Failed returns the state of a query that broke at stage with err.
// The displayed message is always FailedMessage.
func Failed(query string, stage Stage, err error) State {
	return State{
		Status:  StatusFailed,
		Query:   query,
		Message: FailedMessage,
		Stage:   stage,
		Err:     err,
	}
}

// Clone returns a deep copy so observers cannot alias orchestrator data.
func (s State) Clone() State {
	s.WebResults = slices.Clone(s.WebResults)
	s.Threads = slices.Clone(s.Threads)
	if s.Report != nil {
		r := *s.Report
		r.Agreements = slices.Clone(r.Agreements)
		r.Conflicts = slices.Clone(r.Conflicts)
		r.UniqueToWeb = slices.Clone(r.UniqueToWeb)
		r.UniqueToDiscussion = slices.Clone(r.UniqueToDiscussion)
		s.Report = &r
	}
	return s
}
