package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IProjectUseCase covers project intake, client edits and the AI preview step.

type IProjectUseCase interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error)
	GeneratePreview(ctx context.Context, id string) (entities.Project, error)
}

type ProjectUseCase struct {
	repo   interfaces.IProjectRepository
	images interfaces.IImageGenerator
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository, images interfaces.IImageGenerator) *ProjectUseCase {
	return &ProjectUseCase{repo: repo, images: images}
}

// Create stores a new project. Status is submitted unless draft was asked for.
func (u *ProjectUseCase) Create(ctx context.Context, p entities.Project) (entities.Project, error) {
	p.OwnerID = strings.TrimSpace(p.OwnerID)
	p.Title = strings.TrimSpace(p.Title)
	if p.OwnerID == "" {
		return entities.Project{}, ErrInvalidProjectInput
	}
	if err := validateProjectFields(p); err != nil {
		return entities.Project{}, err
	}

	if p.Status != entities.ProjectStatusDraft {
		p.Status = entities.ProjectStatusSubmitted
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.PreviewImageURL = ""
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Project{}, err
	}
	log.Printf("[project][usecase] created project_id=%s owner_id=%s status=%s", created.ID, created.OwnerID, created.Status)
	return created, nil
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) ListByOwner(ctx context.Context, ownerID string) ([]entities.Project, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidProjectInput
	}
	return u.repo.ListByOwner(ctx, ownerID)
}

// Update applies client edits. Ownership, status, preview and creation time
// are kept from the stored project.
func (u *ProjectUseCase) Update(ctx context.Context, p entities.Project) (entities.Project, error) {
	current, err := u.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Project{}, err
	}
	p.Title = strings.TrimSpace(p.Title)
	if err := validateProjectFields(p); err != nil {
		return entities.Project{}, err
	}

	current.Title = p.Title
	current.Client = p.Client
	current.ProjectType = p.ProjectType
	current.SpaceType = p.SpaceType
	current.AreaSqft = p.AreaSqft
	current.Style = p.Style
	current.Materials = p.Materials
	current.Budget = p.Budget
	current.PhotoURLs = p.PhotoURLs
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

func (u *ProjectUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	if !status.Valid() {
		return entities.Project{}, ErrInvalidProjectStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

// GeneratePreview asks the image generator for a styled render of the space,
// stores its URL and moves the project to under_review.
func (u *ProjectUseCase) GeneratePreview(ctx context.Context, id string) (entities.Project, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}

	log.Printf("[project][usecase] preview image start project_id=%s", p.ID)
	url, err := u.images.GeneratePreviewImage(ctx, PreviewPrompt(p))
	if err != nil {
		log.Printf("[project][usecase] preview image failed project_id=%s err=%v", p.ID, err)
		return entities.Project{}, &GenerationError{Op: "image", Err: err}
	}

	updated, err := u.repo.UpdatePreview(ctx, p.ID, url, entities.ProjectStatusUnderReview)
	if err != nil {
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return updated, nil
}

// PreviewPrompt describes the project for the image generator.
func PreviewPrompt(p entities.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Photorealistic interior design render of a %s", orDefault(p.SpaceType, "living space"))
	if s := strings.TrimSpace(p.Style.Name); s != "" {
		fmt.Fprintf(&b, " in %s style", s)
	}
	if len(p.Style.Colors) > 0 {
		fmt.Fprintf(&b, ", color palette %s", strings.Join(p.Style.Colors, ", "))
	}
	m := p.Materials
	for _, part := range []struct{ label, value string }{
		{"flooring", m.Flooring},
		{"walls", m.Walls},
		{"furniture", m.Furniture},
		{"lighting", m.Lighting},
	} {
		if v := strings.TrimSpace(part.value); v != "" {
			fmt.Fprintf(&b, ", %s: %s", part.label, v)
		}
	}
	if p.AreaSqft > 0 {
		fmt.Fprintf(&b, ", about %.0f sqft", p.AreaSqft)
	}
	b.WriteString(".")
	return b.String()
}

func validateProjectFields(p entities.Project) error {
	if p.Title == "" || p.AreaSqft < 0 {
		return ErrInvalidProjectInput
	}
	if p.Budget.Min < 0 || p.Budget.Max < 0 || (p.Budget.Max > 0 && p.Budget.Min > p.Budget.Max) {
		return ErrInvalidProjectInput
	}
	return nil
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s == "" {
		return def
	}
	return s
}
