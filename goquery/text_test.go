package goquery_test

import (
	"testing"

	"github.com/fwojciec/readable/goquery"
	"github.com/stretchr/testify/assert"
)

func TestTextContent(t *testing.T) {
	t.Parallel()

	t.Run("puts blocks on their own lines", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div id="x"><h1>Title</h1><p>Hello   <b>world</b></p><p>a<br>b</p></div>`)

		assert.Equal(t, "Title\nHello world\na\nb", goquery.TextContent(find(t, doc, "#x")))
	})

	t.Run("keeps line breaks inside pre", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<div id=\"x\"><pre>line1\n  line2</pre></div>")

		assert.Equal(t, "line1\nline2", goquery.TextContent(find(t, doc, "#x")))
	})

	t.Run("separates table cells", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div id="x"><table><tr><td>a</td><td>b</td></tr></table></div>`)

		assert.Equal(t, "a b", goquery.TextContent(find(t, doc, "#x")))
	})

	t.Run("returns empty for empty nodes", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div id="x"> </div>`)

		assert.Empty(t, goquery.TextContent(find(t, doc, "#x")))
	})
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	t.Run("ignores short text", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.DetectLanguage("Hello"))
	})
}
