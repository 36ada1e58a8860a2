package main

import (
	"encoding/json"
	"fmt"

	"github.com/tgsdk/apischema"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	schema, err := deps.Snapshots.FindSchemaBySnapshotID(deps.Ctx, c.ID)
	if err != nil {
		if apischema.ErrorCode(err) == apischema.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: snapshot %q not found. Use 'apischema list' to see available snapshots.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", apischema.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(data))
		return nil
	}

	fmt.Fprint(deps.Stdout, apischema.FormatSchema(schema))
	return nil
}
