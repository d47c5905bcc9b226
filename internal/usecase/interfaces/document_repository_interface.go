package interfaces

import (
	"context"
	"io"

	"engagetrack/internal/domain/entities"
)

// IDocumentRepository persists uploaded-document metadata. The documents
// table is native to this service (never touched by the legacy import), so
// it works with typed entities rather than raw records.

type IDocumentRepository interface {
	Create(ctx context.Context, doc entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByEngagement(ctx context.Context, engagementID string) ([]entities.Document, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// IDocumentStorage stores uploaded file bodies. Put returns the storage path
// recorded in the document metadata; Get and Delete take that same path back.

type IDocumentStorage interface {
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) (string, error)
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
