package crosscheck

import (
	"fmt"
	"strings"
)

// FormatMarkdown renders a state as a Markdown document.
// Snippets are passed through conv when it is non-nil; a failed or empty
// conversion falls back to the raw snippet.
func FormatMarkdown(s State, conv Converter) string {
	switch s.Status {
	case StatusLoading:
		return fmt.Sprintf("# %s\n\n_Searching…_\n", s.Query)
	case StatusFailed:
		return fmt.Sprintf("# %s\n\n**%s**\n", s.Query, s.Message)
	case StatusReady:
	default:
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n", s.Query)

	sb.WriteString("\n## Web\n\n")
	if len(s.WebResults) == 0 {
		sb.WriteString("_No web results._\n")
	}
	for i, r := range s.WebResults {
		writeMarkdownItem(&sb, i+1, r.Title, r.Link, r.Snippet, conv)
	}

	sb.WriteString("\n## Discussions\n\n")
	if len(s.Threads) == 0 {
		sb.WriteString("_No discussions._\n")
	}
	for i, t := range s.Threads {
		writeMarkdownItem(&sb, i+1, t.Title, t.Link, t.Snippet, conv)
	}

	if r := s.Report; !r.IsEmpty() {
		sb.WriteString("\n## Conflict Report\n")
		if r.Summary != "" {
			sb.WriteString("\n" + r.Summary + "\n")
		}
		writeMarkdownList(&sb, "Agreements", r.Agreements)
		writeMarkdownList(&sb, "Conflicts", r.Conflicts)
		writeMarkdownList(&sb, "Unique to Web", r.UniqueToWeb)
		writeMarkdownList(&sb, "Unique to Discussions", r.UniqueToDiscussion)
	}

	return sb.String()
}

func writeMarkdownItem(sb *strings.Builder, n int, title, link, snippet string, conv Converter) {
	if title == "" {
		title = link
	}
	fmt.Fprintf(sb, "%d. [%s](%s)\n", n, title, link)
	if snippet = markdownSnippet(snippet, conv); snippet != "" {
		fmt.Fprintf(sb, "   %s\n", strings.ReplaceAll(snippet, "\n", "\n   "))
	}
}

func markdownSnippet(snippet string, conv Converter) string {
	if conv == nil || strings.TrimSpace(snippet) == "" {
		return strings.TrimSpace(snippet)
	}
	md, err := conv.Convert(snippet)
	if err != nil || strings.TrimSpace(md) == "" {
		return strings.TrimSpace(snippet)
	}
	return strings.TrimSpace(md)
}

func writeMarkdownList(sb *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(sb, "\n### %s\n\n", heading)
	for _, item := range items {
		fmt.Fprintf(sb, "- %s\n", item)
	}
}
