package goquery_test

import (
	"testing"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/goquery"
	"github.com/go-shiori/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseURL(t *testing.T) {
	t.Parallel()

	t.Run("accepts absolute URLs", func(t *testing.T) {
		t.Parallel()

		u, err := goquery.ParseBaseURL("https://example.com/posts/1")

		require.NoError(t, err)
		assert.Equal(t, "example.com", u.Host)
	})

	t.Run("accepts file URLs", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ParseBaseURL("file:///tmp/page.html")

		require.NoError(t, err)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		u, err := goquery.ParseBaseURL("")

		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("rejects relative URLs", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.ParseBaseURL("posts/1")

		assert.Equal(t, readable.EINVALIDURL, readable.ErrorCode(err))
	})
}

func TestResolveURLs(t *testing.T) {
	t.Parallel()

	base, err := goquery.ParseBaseURL("https://example.com/posts/1")
	require.NoError(t, err)

	t.Run("resolves links and media", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div id="root">
<a id="rel" href="../about">About</a>
<a id="hash" href="#section">Jump</a>
<a id="mail" href="mailto:a@example.com">Mail</a>
<img id="img" src="/a.png" srcset="/a-1x.png 1x, /a-2x.png 2x">
<video id="video" poster="poster.jpg"><source id="source" src="clip.mp4"></video>
</div>`)
		root := find(t, doc, "#root")

		goquery.ResolveURLs(root, base)

		assert.Equal(t, "https://example.com/about", dom.GetAttribute(find(t, root, "#rel"), "href"))
		assert.Equal(t, "#section", dom.GetAttribute(find(t, root, "#hash"), "href"))
		assert.Equal(t, "mailto:a@example.com", dom.GetAttribute(find(t, root, "#mail"), "href"))
		assert.Equal(t, "https://example.com/a.png", dom.GetAttribute(find(t, root, "#img"), "src"))
		assert.Equal(t, "https://example.com/a-1x.png 1x, https://example.com/a-2x.png 2x", dom.GetAttribute(find(t, root, "#img"), "srcset"))
		assert.Equal(t, "https://example.com/posts/poster.jpg", dom.GetAttribute(find(t, root, "#video"), "poster"))
		assert.Equal(t, "https://example.com/posts/clip.mp4", dom.GetAttribute(find(t, root, "#source"), "src"))
	})

	t.Run("replaces javascript links with text", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<div id="root"><p>Go <a href="javascript:void(0)">back</a> now</p></div>`)
		root := find(t, doc, "#root")

		goquery.ResolveURLs(root, nil)

		assert.Equal(t, "<p>Go back now</p>", dom.InnerHTML(root))
	})
}
