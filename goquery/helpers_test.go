package goquery_test

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// sentence has one comma and is long enough that three of them make a
// scoring seed with the full length bonus of two.
const sentence = "The quick brown fox jumps over the lazy dog, and then it runs back home. "

// paragraph returns roughly 220 characters of prose.
func paragraph() string {
	return strings.Repeat(sentence, 3)
}

func parse(t *testing.T, s string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func find(t *testing.T, root *html.Node, selector string) *html.Node {
	t.Helper()

	n := cascadia.Query(root, cascadia.MustCompile(selector))
	require.NotNil(t, n, "no element matches %q", selector)
	return n
}

func render(t *testing.T, n *html.Node) string {
	t.Helper()

	var b strings.Builder
	require.NoError(t, html.Render(&b, n))
	return b.String()
}
