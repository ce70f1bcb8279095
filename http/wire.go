package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/crosscheck"
)

type searchRequest struct {
	Query string `json:"query"`
}

type webSearchResponse struct {
	Results []crosscheck.WebResult `json:"results"`
}

type discussionSearchResponse struct {
	Threads []crosscheck.DiscussionThread `json:"threads"`
	Content discussionContent             `json:"content"`
}

// discussionContent accepts the scraped text either as one string or as a
// list of per-thread strings, which are joined with a blank line.
type discussionContent string

func (c *discussionContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = discussionContent(s)
		return nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("content must be a string or a list of strings")
	}
	*c = discussionContent(strings.Join(parts, "\n\n"))
	return nil
}

type analyzeRequest struct {
	GoogleResults []crosscheck.WebResult `json:"google_results"`
	RedditResults string                 `json:"reddit_results"`
}

type analyzeResponse struct {
	FinalConflictReport  string   `json:"final_conflict_report"`
	Agreements           []string `json:"agreements"`
	Conflicts            []string `json:"conflicts"`
	UniqueGoogleInsights []string `json:"unique_google_insights"`
	UniqueRedditInsights []string `json:"unique_reddit_insights"`
}

func (r analyzeResponse) report() *crosscheck.ConflictReport {
	return &crosscheck.ConflictReport{
		Summary:            r.FinalConflictReport,
		Agreements:         r.Agreements,
		Conflicts:          r.Conflicts,
		UniqueToWeb:        r.UniqueGoogleInsights,
		UniqueToDiscussion: r.UniqueRedditInsights,
	}
}
