package main

import (
	"fmt"

	"github.com/fwojciec/crosscheck"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	if !deps.Orchestrator.Submit(deps.Ctx, c.Query) {
		fmt.Fprintf(deps.Stderr, "error: query required\n")
		return crosscheck.Errorf(crosscheck.EINVALID, "query required")
	}

	state, err := deps.Orchestrator.Wait(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crosscheck.ErrorMessage(err))
		return err
	}

	if state.Status == crosscheck.StatusFailed {
		fmt.Fprintf(deps.Stderr, "error: %s\n", state.Message)
		return crosscheck.Errorf(crosscheck.EREQUEST, "%s", state.Message)
	}

	var saved *crosscheck.Comparison
	if !c.NoSave && deps.Comparisons != nil {
		comparison, err := crosscheck.NewComparison(state)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", crosscheck.ErrorMessage(err))
			return err
		}
		if err := deps.Comparisons.CreateComparison(deps.Ctx, comparison); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", crosscheck.ErrorMessage(err))
			return err
		}
		saved = comparison
	}

	if err := writeState(deps.Stdout, deps, state, c.Format, saved); err != nil {
		return err
	}

	if saved != nil && c.Format == formatText {
		fmt.Fprintf(deps.Stderr, "Saved comparison %s\n", saved.ID)
	}
	return nil
}
