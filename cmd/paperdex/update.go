package main

import (
	"fmt"
	"sort"

	"github.com/fwojciec/paperdex"
	"github.com/fwojciec/paperdex/scan"
)

// Run executes the update command.
func (c *UpdateCmd) Run(deps *Dependencies) error {
	progress := func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressRootMissing:
			fmt.Fprintf(deps.Stdout, "Papers directory %q not found\n", event.Folder)
		case scan.ProgressFolderSkipped:
			fmt.Fprintf(deps.Stdout, "Skipping folder %q - no valid paper ID found\n", event.Folder)
		case scan.ProgressDocumentMissing:
			fmt.Fprintf(deps.Stdout, "No HTML file found in %q\n", event.Folder)
		case scan.ProgressPaperProcessed:
			fmt.Fprintf(deps.Stdout, "Processing %s from %s...\n", event.ID, event.Doc)
		case scan.ProgressExtractFailed:
			fmt.Fprintf(deps.Stderr, "error extracting %s: %v\n", event.ID, event.Err)
		}
	}

	papers := deps.Scanner.ScanPapers(deps.Ctx, c.Dir, progress)
	if len(papers) == 0 {
		fmt.Fprintln(deps.Stdout, "No papers found to process.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d papers:\n", len(papers))
	ids := make([]string, 0, len(papers))
	for id := range papers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(deps.Stdout, "  - %s: %s\n", id, truncateTitle(papers[id].Title, 50))
	}

	if c.Preview {
		return nil
	}

	result, err := deps.Merger.Merge(deps.Ctx, c.Dir, papers)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", paperdex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Updated %s with %d papers (%d documents)\n", c.Output, result.Papers, result.Documents)
	return nil
}

// truncateTitle shortens a title for display, counting runes so
// multi-byte characters are never split.
func truncateTitle(title string, max int) string {
	runes := []rune(title)
	if len(runes) <= max {
		return title
	}
	return string(runes[:max]) + "..."
}
