package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/readable"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ readable.DocumentService = (*DocumentService)(nil)

// DocumentService implements readable.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// HashContent computes the xxHash of content as a 16-digit hex string.
func HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}

// CreateDocument creates a new document. The ID and content hash are
// generated; ExtractedAt is set to the current time when zero.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *readable.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ContentHash = HashContent(doc.Content)
	if doc.ExtractedAt.IsZero() {
		doc.ExtractedAt = time.Now()
	}
	doc.ExtractedAt = doc.ExtractedAt.UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, title, byline, excerpt, site_name, language, direction,
			content, text_content, length, content_hash, published_time, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.Title, doc.Byline, doc.Excerpt, doc.SiteName, doc.Language,
		doc.Direction, doc.Content, doc.TextContent, doc.Length, doc.ContentHash,
		formatTime(doc.PublishedTime), doc.ExtractedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*readable.Document, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+documentColumns+" FROM documents WHERE id = ?", id)

	doc, err := scanDocument(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, readable.Errorf(readable.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter, most recently
// extracted first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter readable.DocumentFilter) ([]*readable.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}
	if filter.SiteName != nil {
		query.WriteString(" AND site_name = ?")
		args = append(args, *filter.SiteName)
	}

	query.WriteString(" ORDER BY extracted_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*readable.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return readable.Errorf(readable.ENOTFOUND, "document not found")
	}

	return nil
}
