package bubbletea

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/crosscheck"
	cclipgloss "github.com/fwojciec/crosscheck/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrchestrator struct {
	submitted []string
	accept    bool
	state     crosscheck.State
}

func (f *fakeOrchestrator) Submit(_ context.Context, query string) bool {
	f.submitted = append(f.submitted, query)
	return f.accept
}

func (f *fakeOrchestrator) State() crosscheck.State { return f.state }

func (f *fakeOrchestrator) Subscribe(func(crosscheck.State)) func() { return func() {} }

func newTestModel(t *testing.T, o *fakeOrchestrator) Model {
	t.Helper()
	m := NewModel(context.Background(), o, cclipgloss.Renderer{})
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModel_Submit(t *testing.T) {
	t.Parallel()

	t.Run("enter submits the typed query", func(t *testing.T) {
		t.Parallel()

		o := &fakeOrchestrator{accept: true}
		m := newTestModel(t, o)
		m.input.SetValue("Is coffee good?")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		msg := cmd()

		assert.Equal(t, []string{"Is coffee good?"}, o.submitted)
		assert.Equal(t, submittedMsg{Query: "Is coffee good?", Accepted: true}, msg)
	})

	t.Run("blank query does nothing", func(t *testing.T) {
		t.Parallel()

		o := &fakeOrchestrator{accept: true}
		m := newTestModel(t, o)
		m.input.SetValue("   ")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Nil(t, cmd)
		assert.Empty(t, o.submitted)
	})

	t.Run("enter while loading does nothing", func(t *testing.T) {
		t.Parallel()

		o := &fakeOrchestrator{accept: true}
		m := newTestModel(t, o)
		m = update(t, m, StateMsg{State: crosscheck.Loading("first")})
		m.input.SetValue("second")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.Nil(t, cmd)
		assert.Empty(t, o.submitted)
	})

	t.Run("accepted submission clears input", func(t *testing.T) {
		t.Parallel()

		m := newTestModel(t, &fakeOrchestrator{})
		m.input.SetValue("coffee")

		m = update(t, m, submittedMsg{Query: "coffee", Accepted: true})

		assert.Empty(t, m.input.Value())
	})

	t.Run("rejected submission keeps input", func(t *testing.T) {
		t.Parallel()

		m := newTestModel(t, &fakeOrchestrator{})
		m.input.SetValue("coffee")

		m = update(t, m, submittedMsg{Query: "coffee", Accepted: false})

		assert.Equal(t, "coffee", m.input.Value())
	})
}

func TestModel_States(t *testing.T) {
	t.Parallel()

	t.Run("loading starts spinner and shows progress", func(t *testing.T) {
		t.Parallel()

		m := newTestModel(t, &fakeOrchestrator{})

		next, cmd := m.Update(StateMsg{State: crosscheck.Loading("coffee")})

		assert.NotNil(t, cmd)
		assert.Contains(t, next.View(), "Searching…")
	})

	t.Run("ready shows results", func(t *testing.T) {
		t.Parallel()

		m := newTestModel(t, &fakeOrchestrator{})
		m = update(t, m, StateMsg{State: crosscheck.Loading("coffee")})

		m = update(t, m, StateMsg{State: crosscheck.Ready("coffee",
			[]crosscheck.WebResult{{Title: "Coffee facts", Link: "https://a.example"}},
			[]crosscheck.DiscussionThread{{Title: "My decaf story", Link: "https://b.example"}},
			&crosscheck.ConflictReport{Summary: "Aligned."},
		)})

		view := m.View()
		assert.Contains(t, view, "Coffee facts")
		assert.Contains(t, view, "My decaf story")
		assert.Contains(t, view, "Aligned.")
		assert.NotContains(t, view, "Searching…")
	})

	t.Run("failed shows static message", func(t *testing.T) {
		t.Parallel()

		m := newTestModel(t, &fakeOrchestrator{})

		m = update(t, m, StateMsg{State: crosscheck.Failed("coffee", crosscheck.StageAnalysis, errors.New("quota exceeded"))})

		view := m.View()
		assert.Contains(t, view, crosscheck.FailedMessage)
		assert.NotContains(t, view, "quota")
	})

	t.Run("initial state comes from orchestrator", func(t *testing.T) {
		t.Parallel()

		o := &fakeOrchestrator{state: crosscheck.Loading("already running")}
		m := NewModel(context.Background(), o, cclipgloss.Renderer{})

		assert.Equal(t, crosscheck.StatusLoading, m.state.Status)
	})
}

func TestModel_Keys(t *testing.T) {
	t.Parallel()

	t.Run("escape quits", func(t *testing.T) {
		t.Parallel()

		m := newTestModel(t, &fakeOrchestrator{})

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

		require.NotNil(t, cmd)
		assert.Equal(t, tea.QuitMsg{}, cmd())
	})

	t.Run("letters go to the input", func(t *testing.T) {
		t.Parallel()

		m := newTestModel(t, &fakeOrchestrator{})

		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

		assert.Equal(t, "q", m.input.Value())
	})

	t.Run("window size sets renderer width", func(t *testing.T) {
		t.Parallel()

		m := newTestModel(t, &fakeOrchestrator{})

		m = update(t, m, tea.WindowSizeMsg{Width: 70, Height: 30})

		assert.Equal(t, 70, m.renderer.Width)
		assert.Equal(t, 70, m.viewport.Width)
		assert.Equal(t, 27, m.viewport.Height)
	})
}

func TestProgramRef_Send(t *testing.T) {
	t.Parallel()

	t.Run("drops messages without a program", func(t *testing.T) {
		t.Parallel()

		ref := &programRef{}

		assert.NotPanics(t, func() {
			ref.listener()(crosscheck.Loading("coffee"))
		})
	})
}

func TestDefaultKeyMap(t *testing.T) {
	t.Parallel()

	km := DefaultKeyMap()
	for name, b := range map[string][]string{
		"Submit":   km.Submit.Keys(),
		"Quit":     km.Quit.Keys(),
		"Up":       km.Up.Keys(),
		"Down":     km.Down.Keys(),
		"PageUp":   km.PageUp.Keys(),
		"PageDown": km.PageDown.Keys(),
	} {
		assert.NotEmpty(t, b, name)
	}
	assert.Contains(t, km.Quit.Keys(), "ctrl+c")
}
