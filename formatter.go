package readable

import (
	"fmt"
	"strings"
)

// FormatDocuments formats stored documents as a plain-text listing, one
// block per document separated by blank lines. The header uses the title
// and falls back to the source URL.
func FormatDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		header := doc.Title
		if header == "" {
			header = doc.SourceURL
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s  %s\n", doc.ID, header)
		if doc.Byline != "" || doc.SiteName != "" {
			fmt.Fprintf(&b, "  %s\n", strings.Join(nonEmpty(doc.Byline, doc.SiteName), " · "))
		}
		fmt.Fprintf(&b, "  %s (%d chars)", doc.SourceURL, doc.Length)
		if doc.Excerpt != "" {
			fmt.Fprintf(&b, "\n  %s", doc.Excerpt)
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}

func nonEmpty(values ...string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
