// Package lipgloss renders orchestrator states for the terminal.
package lipgloss

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/crosscheck"
)

const (
	// DefaultWidth is used when the terminal width is unknown.
	DefaultWidth = 100

	// StackWidth is the narrowest width that still shows the web and
	// discussion columns side by side.
	StackWidth = 80

	columnGap = 1
)

// Renderer turns a crosscheck.State into styled terminal text.
type Renderer struct {
	// Width is the terminal width in cells. Zero means DefaultWidth.
	Width int

	// Cleaner strips markup from titles and snippets. Optional.
	Cleaner crosscheck.TextCleaner
}

// NewRenderer creates a new Renderer.
func NewRenderer(width int, cleaner crosscheck.TextCleaner) *Renderer {
	return &Renderer{Width: width, Cleaner: cleaner}
}

// Render returns the display text for s. Idle renders as the empty string.
func (r *Renderer) Render(s crosscheck.State) string {
	switch s.Status {
	case crosscheck.StatusLoading:
		return lipgloss.JoinVertical(lipgloss.Left,
			queryStyle.Render(s.Query),
			loadingStyle.Render("Searching…"),
		)
	case crosscheck.StatusFailed:
		return lipgloss.JoinVertical(lipgloss.Left,
			queryStyle.Render(s.Query),
			failedStyle.Render(s.Message),
		)
	case crosscheck.StatusReady:
		return r.renderReady(s)
	default:
		return ""
	}
}

func (r *Renderer) width() int {
	if r.Width <= 0 {
		return DefaultWidth
	}
	return r.Width
}

func (r *Renderer) renderReady(s crosscheck.State) string {
	width := r.width()

	webItems := make([]item, len(s.WebResults))
	for i, w := range s.WebResults {
		webItems[i] = item{title: w.Title, link: w.Link, snippet: w.Snippet}
	}
	threadItems := make([]item, len(s.Threads))
	for i, t := range s.Threads {
		threadItems[i] = item{title: t.Title, link: t.Link, snippet: t.Snippet}
	}

	var columns string
	if width < StackWidth {
		inner := width - panelStyle.GetHorizontalFrameSize()
		columns = lipgloss.JoinVertical(lipgloss.Left,
			r.renderPanel("Web", webItems, "No web results.", inner),
			r.renderPanel("Discussions", threadItems, "No discussions.", inner),
		)
	} else {
		half := (width - columnGap) / 2
		inner := half - panelStyle.GetHorizontalFrameSize()
		left := r.renderPanel("Web", webItems, "No web results.", inner)
		right := r.renderPanel("Discussions", threadItems, "No discussions.", inner)
		columns = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", columnGap), right)
	}

	parts := []string{queryStyle.Render(s.Query), columns}
	if report := r.renderReport(s.Report, width); report != "" {
		parts = append(parts, report)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

type item struct {
	title   string
	link    string
	snippet string
}

func (r *Renderer) renderPanel(title string, items []item, empty string, inner int) string {
	var lines []string
	lines = append(lines, panelTitleStyle.Render(fmt.Sprintf("%s (%d)", title, len(items))))

	if len(items) == 0 {
		lines = append(lines, emptyStyle.Render(empty))
	}
	for i, it := range items {
		name := r.clean(it.title)
		if name == "" {
			name = it.link
		}
		lines = append(lines, "", itemTitleStyle.Render(fmt.Sprintf("%d. %s", i+1, name)))
		if it.link != "" {
			lines = append(lines, linkStyle.Render(it.link))
		}
		if snippet := r.clean(it.snippet); snippet != "" {
			lines = append(lines, snippetStyle.Render(snippet))
		}
	}

	return panelStyle.Width(inner + panelStyle.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderReport(report *crosscheck.ConflictReport, width int) string {
	if report.IsEmpty() {
		return ""
	}

	lines := []string{panelTitleStyle.Render("Conflict Report")}
	if report.Summary != "" {
		lines = append(lines, summaryStyle.Render(r.clean(report.Summary)))
	}

	sections := []struct {
		heading string
		entries []string
		style   lipgloss.Style
	}{
		{"Agreements", report.Agreements, agreementStyle},
		{"Conflicts", report.Conflicts, conflictStyle},
		{"Unique to Web", report.UniqueToWeb, uniqueStyle},
		{"Unique to Discussions", report.UniqueToDiscussion, uniqueStyle},
	}
	for _, sec := range sections {
		if len(sec.entries) == 0 {
			continue
		}
		lines = append(lines, "", sec.style.Bold(true).Render(sec.heading))
		for _, e := range sec.entries {
			lines = append(lines, sec.style.Render("• "+r.clean(e)))
		}
	}

	inner := width - panelStyle.GetHorizontalFrameSize()
	return panelStyle.Width(inner + panelStyle.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) clean(s string) string {
	if r.Cleaner == nil {
		return strings.TrimSpace(s)
	}
	return r.Cleaner.Clean(s)
}
