package goquery

import (
	"strings"

	"golang.org/x/net/html"
)

// lineBreakTags end a line of text when rendered as plain text.
var lineBreakTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "h1": true,
	"h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"tr": true, "ul": true, "caption": true,
}

// TextContent renders n as plain text. Whitespace runs collapse to a single
// space, block elements and <br> start new lines, and text inside <pre>
// keeps its line breaks. Lines are trimmed and blank lines dropped.
func TextContent(n *html.Node) string {
	var b strings.Builder
	writeText(&b, n, false)

	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n")
}

func writeText(b *strings.Builder, n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			b.WriteString(n.Data)
			return
		}
		b.WriteString(collapseSpace(n.Data))
		return
	case html.ElementNode:
		if n.Data == "td" || n.Data == "th" {
			b.WriteByte(' ')
		}
		if lineBreakTags[n.Data] {
			b.WriteByte('\n')
		}
		pre = pre || n.Data == "pre"
	case html.DocumentNode:
	default:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c, pre)
	}
	if n.Type == html.ElementNode && lineBreakTags[n.Data] && n.Data != "br" {
		b.WriteByte('\n')
	}
}

// collapseSpace replaces whitespace runs with one space, keeping a leading
// or trailing space so adjacent inline text stays separated.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		if s == "" {
			return ""
		}
		return " "
	}
	out := strings.Join(fields, " ")
	if isSpace(s[0]) {
		out = " " + out
	}
	if isSpace(s[len(s)-1]) {
		out += " "
	}
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
