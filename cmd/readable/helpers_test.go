package main_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/readable"
	main "github.com/fwojciec/readable/cmd/readable"
	"github.com/fwojciec/readable/htmltomarkdown"
	"github.com/fwojciec/readable/mock"
	"github.com/stretchr/testify/require"
)

// sentence has one comma; three of them make a scoring paragraph.
const sentence = "The quick brown fox jumps over the lazy dog, and then it runs back home. "

// articleHTML is a page the engine extracts with default options.
func articleHTML() string {
	p := strings.Repeat(sentence, 3)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Example | Example Site</title>
<meta property="og:title" content="Example">
<meta property="og:site_name" content="Example Site"></head>
<body>
<nav><a href="/">NavigationHome</a> <a href="/about">NavigationAbout</a></nav>
<article>
<h1>Example</h1>
<p>%s</p>
<p>%s</p>
<p>%s</p>
</article>
<footer><p>Copyright 2024 Example Site. All rights reserved.</p></footer>
</body>
</html>`, p, p, p)
}

// writeFile writes content to name inside dir and returns the path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// testArticle is what the mock extractor returns.
func testArticle() *readable.Article {
	return &readable.Article{
		Title:       "Release Notes",
		Byline:      "Jane Doe",
		Content:     `<div><h2>Highlights</h2><p>Faster builds.</p><h3>Details</h3><p>More text.</p></div>`,
		TextContent: "Highlights\nFaster builds.\nDetails\nMore text.",
		Length:      44,
		SiteName:    "Example",
	}
}

// newDeps returns dependencies with a mock extractor returning article
// (or err) and recording the options it was built with.
func newDeps(article *readable.Article, err error) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer, *readable.Options) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	var used readable.Options

	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  strings.NewReader("<html><body><p>stdin</p></body></html>"),
		Stdout: stdout,
		Stderr: stderr,
		NewExtractor: func(opts readable.Options) readable.Extractor {
			used = opts
			return &mock.Extractor{
				ExtractFn: func(_, _ string) (*readable.Article, error) {
					if err != nil {
						return nil, err
					}
					a := *article
					return &a, nil
				},
			}
		},
		Converter: htmltomarkdown.NewConverter(),
	}
	return deps, stdout, stderr, &used
}
