package mock

import "github.com/fwojciec/readable"

var _ readable.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readable.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*readable.Article, error)
}

func (e *Extractor) Extract(html, pageURL string) (*readable.Article, error) {
	return e.ExtractFn(html, pageURL)
}

var _ readable.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of readable.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
