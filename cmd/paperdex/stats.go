package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/paperdex"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	catalog, err := deps.Catalogs.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paperdex.ErrorMessage(err))
		return err
	}

	if len(catalog.Papers) == 0 && catalog.LastUpdated == "" {
		fmt.Fprintln(deps.Stdout, "No catalog found. Run 'paperdex' to create one.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Papers:    %d\n", catalog.Statistics.TotalPapers)
	fmt.Fprintf(deps.Stdout, "Documents: %d\n", catalog.Statistics.TotalDocuments)
	fmt.Fprintf(deps.Stdout, "Version:   %s\n", catalog.Version)
	if catalog.LastUpdated != "" {
		fmt.Fprintf(deps.Stdout, "Updated:   %s\n", catalog.LastUpdated)
	}

	if len(catalog.Papers) > 0 {
		counts := make(map[string]int)
		for _, entry := range catalog.Papers {
			counts[entry.Category]++
		}
		categories := make([]string, 0, len(counts))
		for category := range counts {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		fmt.Fprintln(deps.Stdout)
		for _, category := range categories {
			fmt.Fprintf(deps.Stdout, "  %d  %s\n", counts[category], category)
		}
	}

	return nil
}
