package request

import (
	"strings"

	"interiorquote/internal/domain/entities"
)

type ClientContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type StyleRequest struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

type MaterialsRequest struct {
	Flooring  string `json:"flooring"`
	Walls     string `json:"walls"`
	Furniture string `json:"furniture"`
	Lighting  string `json:"lighting"`
}

type BudgetRequest struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// ProjectRequest is the intake form of a design request. Status is only
// honoured on create, where "draft" keeps the project out of the review queue.
type ProjectRequest struct {
	OwnerID     string               `json:"owner_id"`
	Title       string               `json:"title" binding:"required"`
	Client      ClientContactRequest `json:"client"`
	ProjectType string               `json:"project_type"`
	SpaceType   string               `json:"space_type"`
	AreaSqft    float64              `json:"area_sqft"`
	Style       StyleRequest         `json:"style"`
	Materials   MaterialsRequest     `json:"materials"`
	Budget      BudgetRequest        `json:"budget"`
	PhotoURLs   []string             `json:"photo_urls"`
	Status      string               `json:"status"`
}

func (r ProjectRequest) ToEntity() entities.Project {
	return entities.Project{
		OwnerID: strings.TrimSpace(r.OwnerID),
		Title:   strings.TrimSpace(r.Title),
		Client: entities.ClientContact{
			Name:  strings.TrimSpace(r.Client.Name),
			Email: strings.TrimSpace(r.Client.Email),
			Phone: strings.TrimSpace(r.Client.Phone),
		},
		ProjectType: r.ProjectType,
		SpaceType:   r.SpaceType,
		AreaSqft:    r.AreaSqft,
		Style:       entities.StylePreferences{Name: r.Style.Name, Colors: r.Style.Colors},
		Materials: entities.MaterialPreferences{
			Flooring:  r.Materials.Flooring,
			Walls:     r.Materials.Walls,
			Furniture: r.Materials.Furniture,
			Lighting:  r.Materials.Lighting,
		},
		Budget:    entities.BudgetRange{Min: r.Budget.Min, Max: r.Budget.Max},
		PhotoURLs: r.PhotoURLs,
		Status:    entities.ProjectStatus(strings.TrimSpace(r.Status)),
	}
}

type ProjectStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
