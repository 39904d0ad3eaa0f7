package readable

import (
	"context"
	"time"
)

// Document is an extracted article kept in storage.
type Document struct {
	ID            string     `json:"id"`
	SourceURL     string     `json:"sourceUrl"`
	Title         string     `json:"title"`
	Byline        string     `json:"byline,omitempty"`
	Excerpt       string     `json:"excerpt,omitempty"`
	SiteName      string     `json:"siteName,omitempty"`
	Language      string     `json:"language,omitempty"`
	Direction     string     `json:"direction,omitempty"`
	Content       string     `json:"content"`
	TextContent   string     `json:"textContent"`
	Length        int        `json:"length"`
	ContentHash   string     `json:"contentHash"`
	PublishedTime *time.Time `json:"publishedTime,omitempty"`
	ExtractedAt   time.Time  `json:"extractedAt"`
}

// NewDocument returns a document holding the fields of a.
func NewDocument(sourceURL string, a *Article) *Document {
	return &Document{
		SourceURL:     sourceURL,
		Title:         a.Title,
		Byline:        a.Byline,
		Excerpt:       a.Excerpt,
		SiteName:      a.SiteName,
		Language:      a.Language,
		Direction:     a.Direction,
		Content:       a.Content,
		TextContent:   a.TextContent,
		Length:        a.Length,
		PublishedTime: a.PublishedTime,
	}
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.SourceURL == "" {
		return Errorf(EINVALID, "document source URL required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// DocumentWriter writes documents to storage.
type DocumentWriter interface {
	CreateDocument(ctx context.Context, doc *Document) error
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// CreateDocument creates a new document.
	CreateDocument(ctx context.Context, doc *Document) error

	// FindDocumentByID retrieves a document by ID.
	// Returns ENOTFOUND if document does not exist.
	FindDocumentByID(ctx context.Context, id string) (*Document, error)

	// FindDocuments retrieves documents matching the filter.
	FindDocuments(ctx context.Context, filter DocumentFilter) ([]*Document, error)

	// DeleteDocument permanently removes a document.
	// Returns ENOTFOUND if document does not exist.
	DeleteDocument(ctx context.Context, id string) error
}

// DocumentFilter represents a filter for FindDocuments.
type DocumentFilter struct {
	ID          *string `json:"id"`
	SourceURL   *string `json:"sourceUrl"`
	ContentHash *string `json:"contentHash"`
	SiteName    *string `json:"siteName"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
