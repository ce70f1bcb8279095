package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/crosscheck"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := crosscheck.ComparisonFilter{Limit: c.Limit}
	if c.Query != "" {
		filter.Query = &c.Query
	}

	comparisons, err := deps.Comparisons.FindComparisons(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", crosscheck.ErrorMessage(err))
		return err
	}

	if len(comparisons) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved comparisons. Use 'crosscheck ask' to create one.")
		return nil
	}

	for _, cmp := range comparisons {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  (%d web, %d discussions, %d conflicts)\n",
			cmp.ID,
			cmp.CreatedAt.Local().Format(time.DateTime),
			cmp.Query,
			len(cmp.WebResults),
			len(cmp.Threads),
			len(cmp.Report.Conflicts),
		)
	}

	return nil
}
