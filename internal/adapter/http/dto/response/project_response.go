package response

import (
	"time"

	"interiorquote/internal/domain/entities"
)

type ProjectResponse struct {
	ID              string                       `json:"id"`
	OwnerID         string                       `json:"owner_id"`
	Title           string                       `json:"title"`
	Client          entities.ClientContact       `json:"client"`
	ProjectType     string                       `json:"project_type"`
	SpaceType       string                       `json:"space_type"`
	AreaSqft        float64                      `json:"area_sqft"`
	Style           entities.StylePreferences    `json:"style"`
	Materials       entities.MaterialPreferences `json:"materials"`
	Budget          entities.BudgetRange         `json:"budget"`
	PhotoURLs       []string                     `json:"photo_urls"`
	PreviewImageURL string                       `json:"preview_image_url,omitempty"`
	Status          string                       `json:"status"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	photos := p.PhotoURLs
	if photos == nil {
		photos = []string{}
	}
	return ProjectResponse{
		ID:              p.ID,
		OwnerID:         p.OwnerID,
		Title:           p.Title,
		Client:          p.Client,
		ProjectType:     p.ProjectType,
		SpaceType:       p.SpaceType,
		AreaSqft:        p.AreaSqft,
		Style:           p.Style,
		Materials:       p.Materials,
		Budget:          p.Budget,
		PhotoURLs:       photos,
		PreviewImageURL: p.PreviewImageURL,
		Status:          string(p.Status),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}
