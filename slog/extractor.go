// Package slog decorates readable services with structured logging.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/readable"
)

// Ensure LoggingExtractor implements readable.Extractor.
var _ readable.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of each extraction.
type LoggingExtractor struct {
	next   readable.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next readable.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html, pageURL string) (article *readable.Article, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", pageURL,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		if article != nil {
			attrs = append(attrs, "length", article.Length, "title", article.Title)
		}
		if err != nil {
			attrs = append(attrs, "code", readable.ErrorCode(err), "err", err)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
