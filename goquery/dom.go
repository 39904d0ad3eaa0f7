package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tagName returns the lowercase tag of an element node, or "" for other
// node types.
func tagName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return n.Data
}

// rename changes the tag of n in place, keeping attributes and children.
func rename(n *html.Node, tag string) {
	n.Data = tag
	n.DataAtom = atom.Lookup([]byte(tag))
}

// remove detaches n from its parent.
func remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// unwrap replaces n with its children.
func unwrap(n *html.Node) {
	parent := n.Parent
	if parent == nil {
		return
	}
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		parent.InsertBefore(c, n)
	}
	parent.RemoveChild(n)
}

// elements returns the element descendants of root in document order,
// excluding root itself. When tags are given only those tags are returned.
func elements(root *html.Node, tags ...string) []*html.Node {
	var want map[string]bool
	if len(tags) > 0 {
		want = make(map[string]bool, len(tags))
		for _, t := range tags {
			want[t] = true
		}
	}
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (want == nil || want[c.Data]) {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(root)
	return out
}

// countTags counts element descendants of root with any of the given tags.
func countTags(root *html.Node, tags ...string) int {
	return len(elements(root, tags...))
}

// findFirst returns the first element descendant of root with tag.
func findFirst(root *html.Node, tag string) *html.Node {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// hasAncestorTag reports whether any ancestor of n has tag.
func hasAncestorTag(n *html.Node, tag string) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if tagName(p) == tag {
			return true
		}
	}
	return false
}

// isDetachedRoot reports whether n sits directly under the document node.
func isDetachedRoot(n *html.Node) bool {
	return n.Parent == nil || n.Parent.Type == html.DocumentNode
}

// isPageRoot reports whether n is the body or html element.
func isPageRoot(n *html.Node) bool {
	t := tagName(n)
	return t == "body" || t == "html"
}

// depth is the number of ancestors of n.
func depth(n *html.Node) int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// hasBlockChild reports whether n has an element child that is block level.
func hasBlockChild(n *html.Node) bool {
	for _, c := range dom.Children(n) {
		if blockTags[c.Data] {
			return true
		}
	}
	return false
}

// isPhrasing reports whether n is inline content.
func isPhrasing(n *html.Node) bool {
	switch n.Type {
	case html.TextNode:
		return true
	case html.ElementNode:
		if phrasingTags[n.Data] {
			return true
		}
		if n.Data == "a" || n.Data == "del" || n.Data == "ins" {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if !isPhrasing(c) {
					return false
				}
			}
			return true
		}
	}
	return false
}

// isWhitespace reports whether n is a text node of only whitespace.
func isWhitespace(n *html.Node) bool {
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) == ""
}

// classAndID returns the class and id of n joined for pattern matching.
func classAndID(n *html.Node) string {
	return dom.ClassName(n) + " " + dom.ID(n)
}

// innerText returns the whitespace-collapsed text of n.
func innerText(n *html.Node) string {
	return strings.Join(strings.Fields(dom.TextContent(n)), " ")
}

// textLength is the character count of innerText.
func textLength(n *html.Node) int {
	return utf8.RuneCountInString(innerText(n))
}

// countCommas counts comma-like characters in s.
func countCommas(s string) int {
	return len(commasRe.FindAllStringIndex(s, -1))
}

// hasMedia reports whether n is or contains a media element.
func hasMedia(n *html.Node) bool {
	if mediaTags[tagName(n)] {
		return true
	}
	for _, e := range elements(n) {
		if mediaTags[e.Data] {
			return true
		}
	}
	return false
}

// LinkDensity returns the share of n's text that sits inside anchors.
// Anchors pointing into the page (href starting with "#") count at 0.3.
func LinkDensity(n *html.Node) float64 {
	total := textLength(n)
	if total == 0 {
		return 0
	}
	var linked float64
	for _, a := range elements(n, "a") {
		coefficient := 1.0
		if href := dom.GetAttribute(a, "href"); len(href) > 1 && href[0] == '#' {
			coefficient = 0.3
		}
		linked += float64(textLength(a)) * coefficient
	}
	return linked / float64(total)
}

// isProbablyVisible reports whether n is visible according to its inline
// style, hidden attribute and aria-hidden state.
func isProbablyVisible(n *html.Node) bool {
	style := strings.ToLower(strings.ReplaceAll(dom.GetAttribute(n, "style"), " ", ""))
	if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
		return false
	}
	if dom.HasAttribute(n, "hidden") {
		return false
	}
	if strings.EqualFold(dom.GetAttribute(n, "aria-hidden"), "true") &&
		!strings.Contains(dom.ClassName(n), "fallback-image") {
		return false
	}
	return true
}
