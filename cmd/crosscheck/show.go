package main

import (
	"fmt"

	"github.com/fwojciec/crosscheck"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	comparison, err := deps.Comparisons.FindComparisonByID(deps.Ctx, c.ID)
	if err != nil {
		if crosscheck.ErrorCode(err) == crosscheck.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: comparison %q not found. Use 'crosscheck history' to see saved comparisons.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", crosscheck.ErrorMessage(err))
		return err
	}

	return writeState(deps.Stdout, deps, comparison.State(), c.Format, comparison)
}
