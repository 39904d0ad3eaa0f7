package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readable"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// ExtractMetadata reads the metadata priority chain from a preprocessed
// document. jsonLD is the highest priority tier, usually from ReadJSONLD;
// pass the zero value to skip it. Tiers below fill only unset fields:
// OpenGraph, Twitter, Dublin Core, standard meta tags, then <title>.
// DOM bylines override meta bylines, and the excerpt is the first
// qualifying paragraph with meta descriptions as the fallback.
func ExtractMetadata(doc *html.Node, jsonLD readable.Metadata, h readable.Heuristics) readable.Metadata {
	d := goquery.NewDocumentFromNode(doc)
	tags := collectMeta(d)

	meta := jsonLD
	meta.Merge(readable.Metadata{
		Title:         tags.get("og:title"),
		Byline:        notURL(tags.get("article:author")),
		Excerpt:       tags.get("og:description"),
		SiteName:      tags.get("og:site_name"),
		Image:         tags.get("og:image", "og:image:url", "og:image:secure_url"),
		Language:      strings.ReplaceAll(tags.get("og:locale"), "_", "-"),
		PublishedTime: parseTime(tags.get("article:published_time")),
	})
	meta.Merge(readable.Metadata{
		Title:   tags.get("twitter:title"),
		Excerpt: tags.get("twitter:description"),
		Image:   tags.get("twitter:image", "twitter:image:src"),
	})
	meta.Merge(readable.Metadata{
		Title:         tags.get("dc.title"),
		Byline:        tags.get("dc.creator"),
		Excerpt:       tags.get("dc.description"),
		SiteName:      tags.get("dc.publisher"),
		Language:      tags.get("dc.language"),
		PublishedTime: parseTime(tags.get("dc.date", "dc.date.issued", "dc.created")),
	})

	root := d.Find("html").First()
	meta.Merge(readable.Metadata{
		Title:         tags.get("title", "parsely-title"),
		Byline:        tags.get("author", "parsely-author"),
		Excerpt:       tags.get("description"),
		SiteName:      tags.get("application-name"),
		Language:      firstString(tags.get("content-language", "language"), attrOf(root, "lang")),
		Direction:     normalizeDir(attrOf(root, "dir")),
		PublishedTime: parseTime(tags.get("date", "pubdate", "publish-date", "parsely-pub-date")),
		Image:         attrOf(d.Find(`link[rel="image_src"]`).First(), "href"),
		Favicon:       favicon(d),
	})

	if meta.Title == "" {
		meta.Title = CleanTitle(d.Find("title").First().Text(), meta.SiteName)
		if h1 := d.Find("h1"); h1.Length() == 1 && (meta.Title == "" || utf8.RuneCountInString(meta.Title) > 150) {
			meta.Title = strings.Join(strings.Fields(h1.Text()), " ")
		}
	}

	if byline := findByline(doc); byline != "" {
		meta.Byline = byline
	} else {
		meta.Byline = normalizeByline(meta.Byline)
	}

	if excerpt := findExcerpt(doc, h.ExcerptMinLength); excerpt != "" {
		meta.Excerpt = excerpt
	}

	return meta
}

// metaTags maps lowercased meta names and properties to their content.
// The first occurrence of a key wins.
type metaTags map[string]string

func (m metaTags) get(keys ...string) string {
	for _, k := range keys {
		if v := m[k]; v != "" {
			return v
		}
	}
	return ""
}

func collectMeta(d *goquery.Document) metaTags {
	tags := make(metaTags)
	d.Find("meta").Each(func(_ int, s *goquery.Selection) {
		content := strings.TrimSpace(html.UnescapeString(attrOf(s, "content")))
		if content == "" {
			return
		}
		var keys []string
		keys = append(keys, strings.Fields(attrOf(s, "property"))...)
		keys = append(keys, strings.Fields(attrOf(s, "name"))...)
		if equiv := attrOf(s, "http-equiv"); equiv != "" {
			keys = append(keys, equiv)
		}
		for _, k := range keys {
			k = normalizeMetaKey(k)
			if _, ok := tags[k]; !ok {
				tags[k] = content
			}
		}
	})
	return tags
}

// normalizeMetaKey folds Dublin Core spellings (DC.title, dc:title,
// dcterms.title, dcterm:title) into dc.title.
func normalizeMetaKey(k string) string {
	k = strings.ToLower(strings.TrimSpace(k))
	for _, prefix := range []string{"dcterms", "dcterm", "dc"} {
		if strings.HasPrefix(k, prefix+".") || strings.HasPrefix(k, prefix+":") {
			return "dc." + strings.ReplaceAll(k[len(prefix)+1:], ":", ".")
		}
	}
	return k
}

func attrOf(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.TrimSpace(v)
}

func favicon(d *goquery.Document) string {
	var href string
	d.Find("link[rel][href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, rel := range strings.Fields(strings.ToLower(attrOf(s, "rel"))) {
			if rel == "icon" || rel == "apple-touch-icon" {
				href = attrOf(s, "href")
				return false
			}
		}
		return true
	})
	return href
}

func normalizeDir(dir string) string {
	switch dir = strings.ToLower(dir); dir {
	case "ltr", "rtl", "auto":
		return dir
	}
	return ""
}

func notURL(s string) string {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return ""
	}
	return s
}

// findByline scans the document for author markup: rel=author links,
// itemprop=author elements and byline-like class or id values. The first
// plausible text wins.
func findByline(doc *html.Node) string {
	for _, n := range elements(doc) {
		rel := dom.GetAttribute(n, "rel")
		itemprop := dom.GetAttribute(n, "itemprop")
		if !strings.Contains(rel, "author") && !strings.Contains(itemprop, "author") && !bylineRe.MatchString(classAndID(n)) {
			continue
		}
		text := innerText(n)
		if strings.Contains(itemprop, "author") {
			for _, child := range elements(n) {
				if strings.Contains(dom.GetAttribute(child, "itemprop"), "name") {
					text = innerText(child)
					break
				}
			}
		}
		text = normalizeByline(text)
		if isPlausibleByline(n, text) {
			return text
		}
	}
	return ""
}

func normalizeByline(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(bylinePrefix.ReplaceAllString(s, ""))
}

// isPlausibleByline checks length bounds, rejects dates and numbers, and
// rejects text inside sidebar or related-content containers.
func isPlausibleByline(n *html.Node, text string) bool {
	length := utf8.RuneCountInString(text)
	if length == 0 || length >= 100 {
		return false
	}
	if isDateLike(text) {
		return false
	}
	for p := n.Parent; p != nil && !isPageRoot(p); p = p.Parent {
		switch tagName(p) {
		case "aside", "nav", "footer":
			return false
		}
		if p.Type == html.ElementNode && sidebarRe.MatchString(classAndID(p)) {
			return false
		}
	}
	return true
}

// findExcerpt returns the first paragraph of at least minLength characters
// that is not navigational.
func findExcerpt(doc *html.Node, minLength int) string {
	for _, p := range elements(doc, "p") {
		text := innerText(p)
		if utf8.RuneCountInString(text) < minLength {
			continue
		}
		if isNavigational(p) {
			continue
		}
		return text
	}
	return ""
}

func isNavigational(p *html.Node) bool {
	if hatnoteRe.MatchString(classAndID(p)) {
		return true
	}
	for n := p; n != nil && n.Type == html.ElementNode && !isPageRoot(n); n = n.Parent {
		switch tagName(n) {
		case "nav", "aside", "footer", "header", "figure", "menu":
			return true
		}
		switch dom.GetAttribute(n, "role") {
		case "navigation", "note", "menu", "doc-footnote":
			return true
		}
		if n != p && unlikelyRe.MatchString(classAndID(n)) && !maybeRe.MatchString(classAndID(n)) {
			return true
		}
	}
	return false
}
