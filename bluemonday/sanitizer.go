// Package bluemonday sanitizes extracted article HTML with
// microcosm-cc/bluemonday.
package bluemonday

import (
	"github.com/fwojciec/readable"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements readable.Sanitizer at compile time.
var _ readable.Sanitizer = (*Sanitizer)(nil)

// Sanitizer removes scripts, event handlers and other unsafe markup while
// keeping the structural HTML of an article.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a Sanitizer built on the user-generated-content
// policy. Class and direction attributes survive so that preserved classes
// and the article direction are not lost.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class", "dir", "lang").Globally()
	p.AllowAttrs("poster").OnElements("video")
	p.AllowElements("figure", "figcaption", "picture", "source")
	p.AllowAttrs("srcset", "sizes", "type", "media").OnElements("source", "img")
	return &Sanitizer{policy: p}
}

// NewTextSanitizer returns a Sanitizer that strips every tag and keeps
// only the text.
func NewTextSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.StripTagsPolicy()}
}

// Sanitize returns html with unsafe markup removed.
func (s *Sanitizer) Sanitize(html string) string {
	return s.policy.Sanitize(html)
}
