package readability_test

import (
	"testing"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_RejectsEmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract("", "")

	require.Error(t, err)
	assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
}

func TestExtractor_RejectsRelativePageURL(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor()
	_, err := ext.Extract(`<html><body><p>Text</p></body></html>`, "posts/1")

	require.Error(t, err)
	assert.Equal(t, readable.EINVALIDURL, readable.ErrorCode(err))
}

func TestExtractor_ExtractsTitle(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Page Title</title></head>
<body><article><p>Content</p></article></body>
</html>`

	ext := readability.NewExtractor()
	article, err := ext.Extract(html, "")

	require.NoError(t, err)
	assert.Equal(t, "Page Title", article.Title)
}

func TestExtractor_Content(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		contains   []string
		notContain string
	}{
		{
			name:       "removes footer",
			body:       `<article><p>This is the main article content that should be preserved in the output.</p></article><footer><p>Footer copyright text 2024</p></footer>`,
			contains:   []string{"main article content"},
			notContain: "Footer copyright text",
		},
		{
			name:       "removes sidebar",
			body:       `<aside class="sidebar"><p>Sidebar navigation content</p></aside><article><p>This is the main article content that should be preserved in the output.</p></article>`,
			contains:   []string{"main article content"},
			notContain: "Sidebar navigation content",
		},
		{
			name:     "preserves tables",
			body:     `<article><p>Here is a data table:</p><table><tr><th>Name</th><th>Value</th></tr><tr><td>Foo</td><td>123</td></tr></table></article>`,
			contains: []string{"<table"},
		},
		{
			name:     "preserves code blocks",
			body:     `<article><p>Here is a code example:</p><pre><code>npm install my-package</code></pre><p>That's all you need.</p></article>`,
			contains: []string{"<pre", "npm install my-package"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			html := `<!DOCTYPE html><html><head><title>Test</title></head><body>` + tt.body + `</body></html>`

			article, err := readability.NewExtractor().Extract(html, "https://example.com/")

			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, article.Content, s)
			}
			if tt.notContain != "" {
				assert.NotContains(t, article.Content, tt.notContain)
			}
		})
	}
}
