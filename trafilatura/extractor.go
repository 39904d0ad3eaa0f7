// Package trafilatura provides a baseline readable.Extractor backed by
// markusmobius/go-trafilatura. It is used to compare extraction results.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/readable"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements readable.Extractor at compile time.
var _ readable.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML, pageURL string) (*readable.Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, readable.Errorf(readable.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil || !u.IsAbs() {
			return nil, readable.Errorf(readable.EINVALIDURL, "invalid page URL: %q", pageURL)
		}
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, readable.Errorf(readable.ENOCONTENT, "no article content found: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(result.ContentText) == "" {
		return nil, readable.Errorf(readable.ENOCONTENT, "no article content found")
	}

	article := &readable.Article{
		Title:       result.Metadata.Title,
		Byline:      result.Metadata.Author,
		Content:     contentHTML,
		TextContent: result.ContentText,
		Length:      utf8.RuneCountInString(result.ContentText),
		Excerpt:     result.Metadata.Description,
		SiteName:    result.Metadata.Sitename,
	}
	if !result.Metadata.Date.IsZero() {
		published := result.Metadata.Date
		article.PublishedTime = &published
	}
	return article, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
