package lipgloss

import "github.com/charmbracelet/lipgloss"

// Palette shared by the renderer and the TUI.
var (
	accentColor  = lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#9D8CFF"}
	dimColor     = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6B6B"}
	successColor = lipgloss.AdaptiveColor{Light: "#1E8449", Dark: "#58D68D"}
	warnColor    = lipgloss.AdaptiveColor{Light: "#B9770E", Dark: "#F7DC6F"}
	borderColor  = lipgloss.AdaptiveColor{Light: "#C8C8C8", Dark: "#444444"}
)

var (
	queryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor)

	itemTitleStyle = lipgloss.NewStyle().Bold(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Underline(true)

	snippetStyle = lipgloss.NewStyle()

	emptyStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(dimColor)

	loadingStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(accentColor)

	failedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	summaryStyle = lipgloss.NewStyle().Italic(true)

	agreementStyle = lipgloss.NewStyle().Foreground(successColor)
	conflictStyle  = lipgloss.NewStyle().Foreground(errorColor)
	uniqueStyle    = lipgloss.NewStyle().Foreground(warnColor)
)
