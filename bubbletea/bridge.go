package bubbletea

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/crosscheck"
)

// programRef is a shared reference to the tea.Program. The model is copied
// on every Update, so orchestrator listeners hold this pointer instead.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram sets the tea.Program reference (thread-safe).
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

// Send sends a message to the bubbletea program (thread-safe).
// Messages sent before SetProgram or after the program is cleared are dropped.
func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// StateMsg carries an orchestrator state into the event loop.
type StateMsg struct {
	State crosscheck.State
}

// listener returns an orchestrator listener that forwards every state.
func (r *programRef) listener() func(crosscheck.State) {
	return func(s crosscheck.State) {
		r.Send(StateMsg{State: s})
	}
}
