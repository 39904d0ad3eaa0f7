package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readable"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Preprocess normalizes a parsed document in place before scoring. It fails
// with EINVALID when the document has no body element.
func Preprocess(doc *html.Node) error {
	if doc == nil {
		return readable.Errorf(readable.EINVALID, "empty document")
	}
	d := goquery.NewDocumentFromNode(doc)
	if d.Find("body").Length() == 0 {
		return readable.Errorf(readable.EINVALID, "document has no body element")
	}

	d.Find("script, style").Remove()
	removeComments(doc)
	unwrapNoscriptImages(d)
	d.Find("font").Each(func(_ int, s *goquery.Selection) {
		rename(s.Get(0), "span")
	})
	d.Find("form, object, embed").Each(func(_ int, s *goquery.Selection) {
		if n := s.Get(0); n.Data == "form" || !isVideoEmbed(n) {
			s.Remove()
		}
	})
	removeHidden(doc)
	replaceBrs(doc)
	return nil
}

func removeComments(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.CommentNode {
			n.RemoveChild(c)
		} else {
			removeComments(c)
		}
		c = next
	}
}

// unwrapNoscriptImages replaces noscript elements holding an image with
// their decoded markup. Remaining noscript elements are dropped.
func unwrapNoscriptImages(d *goquery.Document) {
	d.Find("noscript").Each(func(_ int, s *goquery.Selection) {
		n := s.Get(0)
		if n.Parent == nil {
			return
		}
		nodes := noscriptContent(n)
		if !isImageFragment(nodes) {
			s.Remove()
			return
		}
		if prev := previousElement(n); prev != nil && prev.Data == "img" && isPlaceholderImage(prev) {
			remove(prev)
		}
		for _, c := range nodes {
			n.Parent.InsertBefore(c, n)
		}
		remove(n)
	})
}

// noscriptContent returns the children of n detached. With scripting
// enabled the parser keeps noscript content as raw text, which is parsed
// here as a fragment.
func noscriptContent(n *html.Node) []*html.Node {
	if n.FirstChild != nil && n.FirstChild == n.LastChild && n.FirstChild.Type == html.TextNode {
		context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
		nodes, err := html.ParseFragment(strings.NewReader(n.FirstChild.Data), context)
		if err != nil {
			return nil
		}
		return nodes
	}
	var nodes []*html.Node
	for c := n.FirstChild; c != nil; c = n.FirstChild {
		n.RemoveChild(c)
		nodes = append(nodes, c)
	}
	return nodes
}

// isImageFragment reports whether nodes contain an image and little else.
func isImageFragment(nodes []*html.Node) bool {
	hasImage := false
	text := 0
	for _, n := range nodes {
		if n.Type == html.TextNode {
			text += len(strings.TrimSpace(n.Data))
			continue
		}
		if n.Type != html.ElementNode {
			continue
		}
		if n.Data == "img" || findFirst(n, "img") != nil {
			hasImage = true
		}
		text += textLength(n)
	}
	return hasImage && text < 200
}

func previousElement(n *html.Node) *html.Node {
	for p := n.PrevSibling; p != nil; p = p.PrevSibling {
		if p.Type == html.ElementNode {
			return p
		}
		if !isWhitespace(p) {
			return nil
		}
	}
	return nil
}

// isPlaceholderImage reports whether img lacks a real source.
func isPlaceholderImage(img *html.Node) bool {
	src := strings.TrimSpace(dom.GetAttribute(img, "src"))
	return src == "" || strings.HasPrefix(src, "data:") || strings.Contains(strings.ToLower(dom.ClassName(img)), "lazy")
}

// isVideoEmbed reports whether any attribute of n, or of its children for
// object elements, points at a known video host.
func isVideoEmbed(n *html.Node) bool {
	for _, a := range n.Attr {
		if videosRe.MatchString(a.Val) {
			return true
		}
	}
	if n.Data == "object" && videosRe.MatchString(dom.InnerHTML(n)) {
		return true
	}
	return false
}

func removeHidden(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && c.Data != "body" && c.Data != "html" && !isProbablyVisible(c) {
			n.RemoveChild(c)
		} else {
			removeHidden(c)
		}
		c = next
	}
}

// replaceBrs turns runs of two or more <br> into paragraph boundaries.
// Phrasing content following such a run is moved into a new <p>.
func replaceBrs(doc *html.Node) {
	for _, br := range elements(doc, "br") {
		if br.Parent == nil {
			continue
		}
		replaced := false
		for next := nextNonWhitespace(br.NextSibling); next != nil && tagName(next) == "br"; next = nextNonWhitespace(br.NextSibling) {
			replaced = true
			remove(next)
		}
		if !replaced {
			continue
		}

		p := dom.CreateElement("p")
		br.Parent.InsertBefore(p, br)
		remove(br)

		for next := p.NextSibling; next != nil; next = p.NextSibling {
			if tagName(next) == "br" {
				if after := nextNonWhitespace(next.NextSibling); after != nil && tagName(after) == "br" {
					break
				}
			}
			if !isPhrasing(next) {
				break
			}
			next.Parent.RemoveChild(next)
			p.AppendChild(next)
		}
		for p.LastChild != nil && isWhitespace(p.LastChild) {
			p.RemoveChild(p.LastChild)
		}
		if tagName(p.Parent) == "p" {
			rename(p.Parent, "div")
		}
	}
}

func nextNonWhitespace(n *html.Node) *html.Node {
	for n != nil && isWhitespace(n) {
		n = n.NextSibling
	}
	return n
}
