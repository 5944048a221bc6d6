package interfaces

import (
	"context"
	"interiorquote/internal/domain/entities"
)

// IQuoteRepository abstracts document-store persistence for Quote.
//
// Lookups return a zero Quote (empty ID) when nothing matches.
// The quoting workflow must be able to:
//   - create the first quote of a project
//   - overwrite a quote in place (regeneration / admin edits), optionally
//     guarded by a compare-and-swap on version
//   - attach a rendered document and move the status forward

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	GetByProjectID(ctx context.Context, projectID string) (entities.Quote, error)
	// Update replaces the stored quote. When expectedVersion > 0 the write only
	// succeeds if the stored version equals it, otherwise ErrVersionMismatch.
	Update(ctx context.Context, q entities.Quote, expectedVersion int) (entities.Quote, error)
	UpdateDocument(ctx context.Context, id string, documentURL string) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
}
