// Package readability provides a baseline readable.Extractor backed by
// go-shiori/go-readability. It is used to compare extraction results.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/readable"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements readable.Extractor at compile time.
var _ readable.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	var base *url.URL
	if pageURL != "" {
		u, err := url.Parse(pageURL)
		if err != nil || !u.IsAbs() {
			return nil, readable.Errorf(readable.EINVALIDURL, "invalid page URL: %q", pageURL)
		}
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, readable.Errorf(readable.ENOCONTENT, "no article content found")
	}

	return &readable.Article{
		Title:       article.Title,
		Byline:      article.Byline,
		Content:     article.Content,
		TextContent: article.TextContent,
		Length:      article.Length,
		Excerpt:     article.Excerpt,
		SiteName:    article.SiteName,
		Image:       article.Image,
		Favicon:     article.Favicon,
	}, nil
}
