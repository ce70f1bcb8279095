package main

import (
	"fmt"

	"github.com/fwojciec/crosscheck"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return crosscheck.Errorf(crosscheck.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Comparisons.DeleteComparison(deps.Ctx, c.ID); err != nil {
		if crosscheck.ErrorCode(err) == crosscheck.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: comparison %q not found. Use 'crosscheck history' to see saved comparisons.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", crosscheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted comparison %s\n", c.ID)
	return nil
}
