package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/readable"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// ParseBaseURL validates a page URL used to resolve relative links. An
// empty string returns nil, meaning links are left as they are. Anything
// else must be an absolute URL with a host, or a file URL.
func ParseBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, readable.Errorf(readable.EINVALIDURL, "invalid base URL: %v", err)
	}
	if !u.IsAbs() {
		return nil, readable.Errorf(readable.EINVALIDURL, "base URL must be absolute: %q", raw)
	}
	if u.Host == "" && u.Scheme != "file" {
		return nil, readable.Errorf(readable.EINVALIDURL, "base URL has no host: %q", raw)
	}
	return u, nil
}

// ResolveURLs rewrites relative href, src, poster and srcset attributes
// under root to absolute URLs. Fragment-only links are left alone and
// javascript: links are replaced by their text. A nil base only handles
// javascript: links.
func ResolveURLs(root *html.Node, base *url.URL) {
	for _, a := range elements(root, "a") {
		href := dom.GetAttribute(a, "href")
		if isScriptLink(href) {
			replaceWithText(a)
			continue
		}
		if base != nil && href != "" && !strings.HasPrefix(href, "#") {
			dom.SetAttribute(a, "href", resolveURL(base, href))
		}
	}
	if base == nil {
		return
	}
	for _, n := range elements(root, "img", "picture", "figure", "video", "audio", "source", "iframe", "track") {
		for _, name := range []string{"src", "poster"} {
			if v := dom.GetAttribute(n, name); v != "" {
				dom.SetAttribute(n, name, resolveURL(base, v))
			}
		}
		if v := dom.GetAttribute(n, "srcset"); v != "" {
			dom.SetAttribute(n, "srcset", resolveSrcset(base, v))
		}
	}
}

// resolveURL resolves href against base. Unparseable values and non-HTTP
// schemes are returned unchanged.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if isNonHTTPLink(href) {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

// resolveSrcset resolves each candidate URL of a srcset value, keeping its
// descriptor.
func resolveSrcset(base *url.URL, srcset string) string {
	candidates := strings.Split(srcset, ",")
	for i, c := range candidates {
		fields := strings.Fields(c)
		if len(fields) == 0 {
			continue
		}
		fields[0] = resolveURL(base, fields[0])
		candidates[i] = strings.Join(fields, " ")
	}
	return strings.Join(candidates, ", ")
}

// ResolveURL resolves a single metadata URL such as an image or favicon.
func ResolveURL(base *url.URL, href string) string {
	if base == nil || href == "" {
		return href
	}
	return resolveURL(base, href)
}

func isScriptLink(href string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "javascript:")
}

// isNonHTTPLink checks if a href uses a scheme that is not resolved.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// replaceWithText swaps n for a text node holding its text, or removes it
// when it has none.
func replaceWithText(n *html.Node) {
	if n.Parent == nil {
		return
	}
	if text := dom.TextContent(n); text != "" {
		n.Parent.InsertBefore(&html.Node{Type: html.TextNode, Data: text}, n)
	}
	n.Parent.RemoveChild(n)
}
