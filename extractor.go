package readable

// Extractor extracts the main content of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the article it contains.
	// pageURL is the base for resolving relative links and may be empty.
	// Returns EINVALID for empty or bodiless input, EINVALIDURL for a
	// malformed pageURL, and ENOCONTENT when no article was found.
	Extract(html string, pageURL string) (*Article, error)
}

// Sanitizer removes unsafe markup from extracted content.
type Sanitizer interface {
	Sanitize(html string) string
}
