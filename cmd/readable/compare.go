package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/readable"
)

const compareTitleWidth = 48

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	html, err := readInput(c.File, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	base, baseErr := deps.NewExtractor(readable.DefaultOptions()).Extract(html, c.URL)
	if baseErr != nil && !readable.IsNoContent(baseErr) {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(baseErr))
		return baseErr
	}

	fmt.Fprintf(deps.Stdout, "%-12s %-*s %8s\n", "EXTRACTOR", compareTitleWidth, "TITLE", "LENGTH")
	printComparison(deps, "readable", base, baseErr, false)

	for _, b := range deps.Baselines {
		article, err := b.Extractor.Extract(html, c.URL)
		if err != nil {
			printComparison(deps, b.Name, nil, err, base != nil)
			continue
		}
		printComparison(deps, b.Name, article, nil, readable.ContentDiffers(base, article))
	}

	return nil
}

func printComparison(deps *Dependencies, name string, article *readable.Article, err error, differs bool) {
	mark := ""
	if differs {
		mark = "  differs"
	}
	if err != nil {
		msg := "no article found"
		if !readable.IsNoContent(err) {
			msg = "error: " + readable.ErrorMessage(err)
		}
		fmt.Fprintf(deps.Stdout, "%-12s %-*s %8s%s\n", name, compareTitleWidth, msg, "-", mark)
		return
	}
	fmt.Fprintf(deps.Stdout, "%-12s %-*s %8d%s\n", name, compareTitleWidth, truncate(article.Title, compareTitleWidth), article.Length, mark)
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}
