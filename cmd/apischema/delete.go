package main

import (
	"fmt"

	"github.com/tgsdk/apischema"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "This will permanently delete snapshot %q and its schema.\nRe-run with --force to confirm.\n", c.ID)
		return apischema.Errorf(apischema.EINVALID, "deletion requires --force")
	}

	if err := deps.Snapshots.DeleteSnapshot(deps.Ctx, c.ID); err != nil {
		if apischema.ErrorCode(err) == apischema.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'apischema list' to see available snapshots.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", apischema.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted snapshot %s\n", c.ID)
	return nil
}
