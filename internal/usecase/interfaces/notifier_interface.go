package interfaces

import (
	"context"
	"interiorquote/internal/domain/entities"
)

// INotifier delivers client notifications. Delivery is best-effort: callers
// log failures and carry on.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
