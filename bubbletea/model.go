// Package bubbletea implements the interactive crosscheck terminal UI.
package bubbletea

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/crosscheck"
	cclipgloss "github.com/fwojciec/crosscheck/lipgloss"
)

// Orchestrator is the part of orchestrate.Orchestrator the TUI drives.
type Orchestrator interface {
	Submit(ctx context.Context, query string) bool
	State() crosscheck.State
	Subscribe(fn func(crosscheck.State)) func()
}

// Layout constants.
const (
	headerHeight  = 1
	inputHeight   = 1
	footerHeight  = 1
	minBodyHeight = 3
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footerStyle = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// submittedMsg reports whether a submission was accepted.
type submittedMsg struct {
	Query    string
	Accepted bool
}

// Model is the root bubbletea model.
type Model struct {
	ctx          context.Context
	orchestrator Orchestrator
	renderer     cclipgloss.Renderer
	ref          *programRef

	input    textinput.Model
	spinner  spinner.Model
	viewport viewport.Model
	keymap   KeyMap

	state  crosscheck.State
	width  int
	height int
}

// NewModel creates a new TUI model. The renderer is copied; its width
// follows the terminal.
func NewModel(ctx context.Context, o Orchestrator, renderer cclipgloss.Renderer) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask a question and press Enter"
	ti.Prompt = "› "
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	vp := viewport.New(cclipgloss.DefaultWidth, 20)

	return Model{
		ctx:          ctx,
		orchestrator: o,
		renderer:     renderer,
		ref:          &programRef{},
		input:        ti,
		spinner:      sp,
		viewport:     vp,
		keymap:       DefaultKeyMap(),
		state:        o.State(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case StateMsg:
		wasLoading := m.state.Status == crosscheck.StatusLoading
		m.state = msg.State
		m.refresh()
		if m.state.Status == crosscheck.StatusLoading && !wasLoading {
			return m, m.spinner.Tick
		}
		return m, nil

	case submittedMsg:
		if msg.Accepted {
			m.input.Reset()
		}
		return m, nil

	case spinner.TickMsg:
		if m.state.Status != crosscheck.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		query := m.input.Value()
		if _, ok := crosscheck.NormalizeQuery(query); !ok {
			return m, nil
		}
		if m.state.Status == crosscheck.StatusLoading {
			return m, nil
		}
		return m, submitCmd(m.ctx, m.orchestrator, query)

	case key.Matches(msg, m.keymap.Up):
		m.viewport.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		m.viewport.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keymap.PageUp):
		m.viewport.PageUp()
		return m, nil

	case key.Matches(msg, m.keymap.PageDown):
		m.viewport.PageDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitCmd runs Submit off the event loop: Submit notifies listeners
// synchronously and the TUI listener sends into the program.
func submitCmd(ctx context.Context, o Orchestrator, query string) tea.Cmd {
	return func() tea.Msg {
		return submittedMsg{Query: query, Accepted: o.Submit(ctx, query)}
	}
}

func (m *Model) layout() {
	m.renderer.Width = m.width
	m.input.Width = max(m.width-4, 10)
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-headerHeight-inputHeight-footerHeight, minBodyHeight)
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderer.Render(m.state))
	if m.state.Status != crosscheck.StatusReady {
		m.viewport.GotoTop()
	}
}

// View renders the full screen.
func (m Model) View() string {
	header := titleStyle.Render("crosscheck")
	if m.state.Status == crosscheck.StatusLoading {
		header += " " + m.spinner.View()
	}

	var help []string
	for _, b := range []key.Binding{m.keymap.Submit, m.keymap.Up, m.keymap.Down, m.keymap.Quit} {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	footer := footerStyle.Render(strings.Join(help, " • "))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.input.View(),
		m.viewport.View(),
		footer,
	)
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, o Orchestrator, renderer cclipgloss.Renderer, opts ...tea.ProgramOption) error {
	model := NewModel(ctx, o, renderer)

	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(model, opts...)
	// Inject the program reference before any state can be published.
	model.ref.SetProgram(p)
	defer model.ref.SetProgram(nil)

	unsubscribe := o.Subscribe(model.ref.listener())
	defer unsubscribe()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
