package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/readable"
)

// Ensure LoggingDocumentService implements readable.DocumentService.
var _ readable.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with debug logging.
type LoggingDocumentService struct {
	next   readable.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next readable.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *readable.Document) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("create document",
			"url", doc.SourceURL,
			"id", doc.ID,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateDocument(ctx, doc)
}

func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id string) (doc *readable.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find document",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocumentByID(ctx, id)
}

func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter readable.DocumentFilter) (docs []*readable.Document, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find documents",
			"count", len(docs),
			"limit", filter.Limit,
			"offset", filter.Offset,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDocuments(ctx, filter)
}

func (s *LoggingDocumentService) DeleteDocument(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("delete document",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteDocument(ctx, id)
}
