package main

import (
	"fmt"

	"github.com/fwojciec/crosscheck"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
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
		fmt.Fprintln(deps.Stdout, "No saved comparisons to export.")
		return nil
	}

	exporter := deps.NewExporter(c.Dir)
	for _, cmp := range comparisons {
		if err := exporter.Save(deps.Ctx, cmp); err != nil {
			_ = exporter.Abort()
			fmt.Fprintf(deps.Stderr, "error: %s\n", crosscheck.ErrorMessage(err))
			return err
		}
	}

	if err := exporter.Commit(); err != nil {
		_ = exporter.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", crosscheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d comparisons to %s\n", len(comparisons), c.Dir)
	return nil
}
