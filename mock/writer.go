package mock

import (
	"context"

	"github.com/fwojciec/readable"
)

var _ readable.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of readable.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *readable.Document) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *readable.Document) error {
	return w.CreateDocumentFn(ctx, doc)
}
