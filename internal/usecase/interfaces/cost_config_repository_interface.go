package interfaces

import (
	"context"
	"interiorquote/internal/domain/entities"
)

// ICostConfigRepository is the pricing catalog store. The quoting path only
// reads (ListActive); the remaining methods serve catalog maintenance.

type ICostConfigRepository interface {
	ListActive(ctx context.Context) ([]entities.CostConfig, error)
	ListAll(ctx context.Context) ([]entities.CostConfig, error)
	Upsert(ctx context.Context, c entities.CostConfig) (entities.CostConfig, error)
	// InsertIfAbsent creates c unless an entry with the same item type exists.
	InsertIfAbsent(ctx context.Context, c entities.CostConfig) (bool, error)
}
