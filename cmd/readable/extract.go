package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/fs"
	"github.com/yosssi/gohtml"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	opts, err := c.Options()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	html, err := readInput(c.File, deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	article, err := deps.NewExtractor(opts).Extract(html, c.URL)
	if readable.IsNoContent(err) {
		fmt.Fprintln(deps.Stderr, "no article found")
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}

	if c.Sanitize {
		article.Content = deps.Sanitizer.Sanitize(article.Content)
	}

	if c.Out != "" {
		source, err := sourceURL(c.File, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
			return err
		}
		doc := readable.NewDocument(source, article)
		doc.ExtractedAt = time.Now().UTC()
		if err := fs.NewWriter(c.Out, deps.Converter).CreateDocument(deps.Ctx, doc); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
			return err
		}
	}

	out, err := c.render(deps, article)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", readable.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, out)
	return nil
}

// render formats the article for stdout.
func (c *ExtractCmd) render(deps *Dependencies, article *readable.Article) (string, error) {
	if c.Outline {
		md, err := deps.Converter.ConvertArticle(article)
		if err != nil {
			return "", err
		}
		return formatOutline(readable.Outline(md)), nil
	}

	switch c.Format {
	case "html":
		if c.Pretty {
			return gohtml.Format(article.Content), nil
		}
		return article.Content, nil
	case "text":
		return article.TextContent, nil
	case "markdown":
		md, err := deps.Converter.ConvertArticle(article)
		return strings.TrimRight(md, "\n"), err
	default:
		b, err := json.MarshalIndent(article, "", "  ")
		return string(b), err
	}
}

// formatOutline prints headings indented by level.
func formatOutline(headings []readable.Heading) string {
	if len(headings) == 0 {
		return "(no headings)"
	}
	top := headings[0].Level
	for _, h := range headings {
		top = min(top, h.Level)
	}

	lines := make([]string, 0, len(headings))
	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-top)
		lines = append(lines, fmt.Sprintf("%s- %s (#%s)", indent, h.Title, h.Anchor))
	}
	return strings.Join(lines, "\n")
}

// readInput reads the HTML from path, or from stdin when path is "-".
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// sourceURL returns the document source for an input: the page URL when
// given, otherwise a file URL for the input path.
func sourceURL(path, pageURL string) (string, error) {
	if pageURL != "" {
		return pageURL, nil
	}
	if path == "" || path == "-" {
		return "", readable.Errorf(readable.EINVALID, "--url is required when reading from stdin")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String(), nil
}
