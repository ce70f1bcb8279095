// Package gemini implements conflict analysis directly against Google Gemini,
// bypassing the backend's analysis endpoint.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/crosscheck"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Analyzer implements crosscheck.ConflictAnalyzer at compile time.
var _ crosscheck.ConflictAnalyzer = (*Analyzer)(nil)

// Analyzer implements crosscheck.ConflictAnalyzer using Google Gemini with a
// structured JSON response.
type Analyzer struct {
	client *genai.Client
	model  string

	// Optional budget for the discussion content sent to the model.
	counter   crosscheck.TokenCounter
	maxTokens int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(a *Analyzer) {
		if model != "" {
			a.model = model
		}
	}
}

// WithContentBudget truncates discussion content to at most maxTokens
// tokens as counted by counter.
func WithContentBudget(counter crosscheck.TokenCounter, maxTokens int) Option {
	return func(a *Analyzer) {
		a.counter = counter
		a.maxTokens = maxTokens
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client, opts ...Option) *Analyzer {
	a := &Analyzer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AnalyzeConflicts asks Gemini to compare web results against discussion
// content. With nothing on either side there is nothing to compare and an
// empty report is returned without calling the model.
func (a *Analyzer) AnalyzeConflicts(ctx context.Context, web []crosscheck.WebResult, discussionContent string) (*crosscheck.ConflictReport, error) {
	if len(web) == 0 && strings.TrimSpace(discussionContent) == "" {
		return &crosscheck.ConflictReport{}, nil
	}
	if a.client == nil {
		return nil, crosscheck.Errorf(crosscheck.EINTERNAL, "gemini client not configured")
	}

	content, err := TruncateToTokens(ctx, a.counter, discussionContent, a.maxTokens)
	if err != nil {
		return nil, fmt.Errorf("count discussion tokens: %w", err)
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: BuildUserPrompt(web, content)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, crosscheck.Errorf(crosscheck.EINTERNAL, "gemini returned nil result")
	}

	return ParseReport(result.Text())
}

const systemInstruction = "You are a conflict detector. Compare information from web search results " +
	"(mainstream and official sources) with community discussions (personal experience and opinion). " +
	"Identify agreements, disagreements, and insights that only one side mentions. " +
	"Be concise: one short sentence per list item."

// BuildConfig returns the GenerateContentConfig for conflict analysis calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	list := func(desc string) *genai.Schema {
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: desc,
			Items:       &genai.Schema{Type: genai.TypeString},
		}
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"agreements":             list("Facts or opinions both sides share"),
				"conflicts":              list("Contradictions or disagreements between the sides"),
				"unique_google_insights": list("Information found only in the web results"),
				"unique_reddit_insights": list("Information found only in the discussions"),
				"final_conflict_report": {
					Type:        genai.TypeString,
					Description: "A brief summary of the differences",
				},
			},
			Required: []string{
				"agreements",
				"conflicts",
				"unique_google_insights",
				"unique_reddit_insights",
				"final_conflict_report",
			},
			PropertyOrdering: []string{
				"agreements",
				"conflicts",
				"unique_google_insights",
				"unique_reddit_insights",
				"final_conflict_report",
			},
		},
	}
}

// BuildUserPrompt builds the prompt containing both data sets.
func BuildUserPrompt(web []crosscheck.WebResult, discussionContent string) string {
	var sb strings.Builder
	sb.WriteString("Analyze these two data sets.\n\n")
	sb.WriteString("--- WEB RESULTS ---\n")
	if len(web) == 0 {
		sb.WriteString("(none)\n")
	}
	for _, r := range web {
		fmt.Fprintf(&sb, "- %s: %s\n", r.Title, r.Snippet)
	}
	sb.WriteString("\n--- DISCUSSIONS ---\n")
	if strings.TrimSpace(discussionContent) == "" {
		sb.WriteString("(none)\n")
	} else {
		sb.WriteString(discussionContent)
		sb.WriteString("\n")
	}
	return sb.String()
}

// ParseReport decodes the model's JSON answer into a report.
func ParseReport(text string) (*crosscheck.ConflictReport, error) {
	text = strings.TrimSpace(text)
	// Models occasionally wrap JSON in a fenced block despite the MIME type.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var out struct {
		FinalConflictReport  string   `json:"final_conflict_report"`
		Agreements           []string `json:"agreements"`
		Conflicts            []string `json:"conflicts"`
		UniqueGoogleInsights []string `json:"unique_google_insights"`
		UniqueRedditInsights []string `json:"unique_reddit_insights"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &out); err != nil {
		return nil, crosscheck.Errorf(crosscheck.EINTERNAL, "gemini returned malformed report: %v", err)
	}

	return &crosscheck.ConflictReport{
		Summary:            out.FinalConflictReport,
		Agreements:         out.Agreements,
		Conflicts:          out.Conflicts,
		UniqueToWeb:        out.UniqueGoogleInsights,
		UniqueToDiscussion: out.UniqueRedditInsights,
	}, nil
}
