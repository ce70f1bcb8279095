package main

import (
	"github.com/fwojciec/crosscheck"
	"github.com/fwojciec/crosscheck/bubbletea"
)

// Run executes the tui command.
func (c *TUICmd) Run(deps *Dependencies) error {
	if !c.NoSave && deps.Comparisons != nil {
		unsubscribe := deps.Orchestrator.Subscribe(historySaver(deps))
		defer unsubscribe()
	}

	return bubbletea.Run(deps.Ctx, deps.Orchestrator, *deps.Renderer)
}

// historySaver returns an orchestrator listener that stores every Ready
// state. Failures are logged and never reach the screen.
func historySaver(deps *Dependencies) func(crosscheck.State) {
	return func(s crosscheck.State) {
		if s.Status != crosscheck.StatusReady {
			return
		}
		comparison, err := crosscheck.NewComparison(s)
		if err != nil {
			deps.Logger.Error("save comparison", "err", err)
			return
		}
		if err := deps.Comparisons.CreateComparison(deps.Ctx, comparison); err != nil {
			deps.Logger.Error("save comparison", "query", s.Query, "err", err)
		}
	}
}
