package main

import (
	"fmt"

	"github.com/tgsdk/apischema"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := apischema.SnapshotFilter{}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	snapshots, err := deps.Snapshots.FindSnapshots(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", apischema.ErrorMessage(err))
		return err
	}

	if len(snapshots) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots. Run 'apischema extract' to create one.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Snapshots (%d total):\n\n", len(snapshots))
	for _, s := range snapshots {
		fmt.Fprintf(deps.Stdout, "  %s  %s  %d types, %d methods\n     %s\n",
			s.ID, s.FetchedAt.Format("2006-01-02 15:04"), s.TypeCount, s.MethodCount, s.SourceURL)
	}

	return nil
}
