package goquery_test

import (
	"testing"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestPreprocess(t *testing.T) {
	t.Parallel()

	t.Run("rejects documents without a body", func(t *testing.T) {
		t.Parallel()

		err := goquery.Preprocess(&html.Node{Type: html.DocumentNode})

		require.Error(t, err)
		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
	})

	t.Run("rejects nil documents", func(t *testing.T) {
		t.Parallel()

		err := goquery.Preprocess(nil)

		assert.Equal(t, readable.EINVALID, readable.ErrorCode(err))
	})

	t.Run("removes scripts, styles and comments", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><style>p{color:red}</style></head><body><!-- note --><script>alert(1)</script><p>Text</p></body></html>`)

		require.NoError(t, goquery.Preprocess(doc))

		out := render(t, doc)
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "<style")
		assert.NotContains(t, out, "note")
		assert.Contains(t, out, "<p>Text</p>")
	})

	t.Run("removes forms and non-video embeds", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<form><input name="q"></form>
<embed src="/flash.swf">
<embed src="https://www.youtube.com/embed/xyz">
</body></html>`)

		require.NoError(t, goquery.Preprocess(doc))

		out := render(t, doc)
		assert.NotContains(t, out, "<form")
		assert.NotContains(t, out, "flash.swf")
		assert.Contains(t, out, "youtube.com/embed/xyz")
	})

	t.Run("removes hidden elements", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<p style="display: none">Styled away</p>
<div hidden>Hidden attribute</div>
<div aria-hidden="true">Aria hidden</div>
<p>Visible</p>
</body></html>`)

		require.NoError(t, goquery.Preprocess(doc))

		out := render(t, doc)
		assert.NotContains(t, out, "Styled away")
		assert.NotContains(t, out, "Hidden attribute")
		assert.NotContains(t, out, "Aria hidden")
		assert.Contains(t, out, "Visible")
	})

	t.Run("renames font to span", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><p><font color="red">Red</font></p></body></html>`)

		require.NoError(t, goquery.Preprocess(doc))

		assert.Contains(t, render(t, doc), `<span color="red">Red</span>`)
	})

	t.Run("turns runs of breaks into paragraphs", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div>first line<br><br>second line</div></body></html>`)

		require.NoError(t, goquery.Preprocess(doc))

		out := render(t, doc)
		assert.Contains(t, out, "<p>second line</p>")
		assert.NotContains(t, out, "<br/>")
	})

	t.Run("keeps single breaks", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><p>first<br>second</p></body></html>`)

		require.NoError(t, goquery.Preprocess(doc))

		assert.Contains(t, render(t, doc), "<p>first<br/>second</p>")
	})

	t.Run("replaces placeholder images with noscript images", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><p>Intro</p><img class="lazy" src="data:image/gif;base64,R0lGOD"><noscript><img src="/real.jpg"></noscript></body></html>`)

		require.NoError(t, goquery.Preprocess(doc))

		out := render(t, doc)
		assert.NotContains(t, out, "data:image")
		assert.NotContains(t, out, "<noscript")
		assert.Contains(t, out, `<img src="/real.jpg"/>`)
	})

	t.Run("drops noscript without images", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><noscript>Please enable JavaScript.</noscript><p>Body</p></body></html>`)

		require.NoError(t, goquery.Preprocess(doc))

		assert.NotContains(t, render(t, doc), "enable JavaScript")
	})
}
