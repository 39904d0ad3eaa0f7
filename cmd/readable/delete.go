package main

import (
	"fmt"

	"github.com/fwojciec/readable"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Documents.DeleteDocument(deps.Ctx, c.ID); err != nil {
		if readable.ErrorCode(err) == readable.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'readable list' to see stored documents.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q\n", c.ID)
	return nil
}
