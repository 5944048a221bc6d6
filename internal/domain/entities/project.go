package entities

import "time"

// ProjectStatus tracks a design request from intake to completion.

type ProjectStatus string

const (
	ProjectStatusDraft       ProjectStatus = "draft"
	ProjectStatusSubmitted   ProjectStatus = "submitted"
	ProjectStatusUnderReview ProjectStatus = "under_review"
	ProjectStatusQuoted      ProjectStatus = "quoted"
	ProjectStatusApproved    ProjectStatus = "approved"
	ProjectStatusCompleted   ProjectStatus = "completed"
)

var projectStatuses = map[ProjectStatus]struct{}{
	ProjectStatusDraft:       {},
	ProjectStatusSubmitted:   {},
	ProjectStatusUnderReview: {},
	ProjectStatusQuoted:      {},
	ProjectStatusApproved:    {},
	ProjectStatusCompleted:   {},
}

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	_, ok := projectStatuses[s]
	return ok
}

type StylePreferences struct {
	Name   string   `json:"name"`
	Colors []string `json:"colors,omitempty"`
}

type MaterialPreferences struct {
	Flooring  string `json:"flooring,omitempty"`
	Walls     string `json:"walls,omitempty"`
	Furniture string `json:"furniture,omitempty"`
	Lighting  string `json:"lighting,omitempty"`
}

type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type ClientContact struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Project is a client design request. It is owned by the user who created it
// and only referenced (never owned) by its quote.
type Project struct {
	ID              string              `json:"id"`
	OwnerID         string              `json:"owner_id"`
	Title           string              `json:"title"`
	Client          ClientContact       `json:"client"`
	ProjectType     string              `json:"project_type"`
	SpaceType       string              `json:"space_type"`
	AreaSqft        float64             `json:"area_sqft"`
	Style           StylePreferences    `json:"style"`
	Materials       MaterialPreferences `json:"materials"`
	Budget          BudgetRange         `json:"budget"`
	PhotoURLs       []string            `json:"photo_urls,omitempty"`
	PreviewImageURL string              `json:"preview_image_url,omitempty"`
	Status          ProjectStatus       `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
