package interfaces

import (
	"context"
	"interiorquote/internal/domain/entities"
)

// IQuoteRenderer turns a quote document into file bytes (PDF, spreadsheet).
type IQuoteRenderer interface {
	Render(ctx context.Context, doc entities.QuoteDocument) ([]byte, error)
}

// IArtifactStore persists rendered documents. Every call stores a new object;
// nothing is overwritten.
type IArtifactStore interface {
	Save(ctx context.Context, objectName string, content []byte, contentType string) (entities.Artifact, error)
}
