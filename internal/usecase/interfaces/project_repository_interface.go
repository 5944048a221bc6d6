package interfaces

import (
	"context"
	"interiorquote/internal/domain/entities"
)

// IProjectRepository abstracts document-store persistence for Project.
// Lookups and updates return a zero Project when the id does not exist.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	UpdatePreview(ctx context.Context, id string, previewURL string, status entities.ProjectStatus) (entities.Project, error)
}
