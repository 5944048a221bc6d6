package interfaces

import (
	"context"
	"interiorquote/internal/domain/entities"
)

// IBOQGenerator turns project attributes into unpriced line items.
//
// Implementations may call an external text-generation provider; the call is
// blocking and honours ctx cancellation. No retries.
type IBOQGenerator interface {
	GenerateBOQ(ctx context.Context, req entities.BOQRequest) (entities.BOQ, error)
}

// IImageGenerator produces a styled preview image for a project and returns
// its URL.
type IImageGenerator interface {
	GeneratePreviewImage(ctx context.Context, prompt string) (string, error)
}
