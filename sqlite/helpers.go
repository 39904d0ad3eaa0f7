package sqlite

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/readable"
)

// documentColumns lists the columns read by scanDocument, in order.
const documentColumns = `id, source_url, title, byline, excerpt, site_name, language, direction,
	content, text_content, length, content_hash, published_time, extracted_at`

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanDocument reads one row selected with documentColumns.
func scanDocument(s scanner) (*readable.Document, error) {
	var doc readable.Document
	var published sql.NullString
	var extractedAt string

	if err := s.Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Byline, &doc.Excerpt,
		&doc.SiteName, &doc.Language, &doc.Direction, &doc.Content, &doc.TextContent,
		&doc.Length, &doc.ContentHash, &published, &extractedAt); err != nil {
		return nil, err
	}

	var err error
	doc.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at")
	if err != nil {
		return nil, err
	}
	if published.Valid {
		t, err := parseRFC3339(published.String, "published_time")
		if err != nil {
			return nil, err
		}
		doc.PublishedTime = &t
	}

	return &doc, nil
}

// formatTime formats an optional timestamp for a nullable column.
func formatTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339), Valid: true}
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
// Returns an error if parsing fails with a descriptive message including the field name.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
