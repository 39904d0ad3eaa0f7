package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/readable"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByID(deps.Ctx, c.ID)
	if err != nil {
		if readable.ErrorCode(err) == readable.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'readable list' to see stored documents.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	switch c.Format {
	case "html":
		fmt.Fprintln(deps.Stdout, doc.Content)
	case "text":
		fmt.Fprintln(deps.Stdout, doc.TextContent)
	default:
		md, err := deps.Converter.ConvertArticle(&readable.Article{
			Title:   doc.Title,
			Byline:  doc.Byline,
			Content: doc.Content,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, strings.TrimRight(md, "\n"))
	}

	return nil
}
