package main

import (
	"fmt"

	"github.com/fwojciec/readable"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := readable.DocumentFilter{Limit: c.Limit}
	if c.Site != "" {
		filter.SiteName = &c.Site
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents found. Use 'readable batch --store' to add some.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, readable.FormatDocuments(docs))
	return nil
}
