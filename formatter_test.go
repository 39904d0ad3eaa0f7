package readable_test

import (
	"testing"

	"github.com/fwojciec/readable"
	"github.com/stretchr/testify/assert"
)

func TestFormatDocuments(t *testing.T) {
	t.Parallel()

	t.Run("formats document with byline and site", func(t *testing.T) {
		t.Parallel()

		docs := []*readable.Document{{
			ID:        "doc-1",
			Title:     "Getting Started",
			Byline:    "Jane Doe",
			SiteName:  "Example",
			SourceURL: "https://example.com/start",
			Length:    1200,
			Excerpt:   "Welcome to the guide.",
		}}

		expected := "doc-1  Getting Started\n  Jane Doe · Example\n  https://example.com/start (1200 chars)\n  Welcome to the guide."
		assert.Equal(t, expected, readable.FormatDocuments(docs))
	})

	t.Run("uses source URL when title is empty", func(t *testing.T) {
		t.Parallel()

		docs := []*readable.Document{{ID: "doc-2", SourceURL: "https://example.com/x", Length: 10}}

		expected := "doc-2  https://example.com/x\n  https://example.com/x (10 chars)"
		assert.Equal(t, expected, readable.FormatDocuments(docs))
	})

	t.Run("separates documents with a blank line", func(t *testing.T) {
		t.Parallel()

		docs := []*readable.Document{
			{ID: "a", Title: "One", SourceURL: "u1", Length: 1},
			{ID: "b", Title: "Two", SourceURL: "u2", Length: 2},
		}

		expected := "a  One\n  u1 (1 chars)\n\nb  Two\n  u2 (2 chars)"
		assert.Equal(t, expected, readable.FormatDocuments(docs))
	})

	t.Run("returns empty string for no documents", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, readable.FormatDocuments(nil))
	})
}
