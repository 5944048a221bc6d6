package entities

// BOQItem is an unpriced bill-of-quantities line produced by the generator.
type BOQItem struct {
	Category string  `json:"category"`
	ItemType string  `json:"itemType"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// BOQRequest carries the project attributes the generator works from.
type BOQRequest struct {
	Style       string
	SpaceType   string
	ProjectType string
	Colors      []string
	Materials   MaterialPreferences
	Area        float64
}

// BOQ is the generator output. Rationale, ROI and DesignDNA are optional
// free-form extras returned by the generative strategy.
type BOQ struct {
	Items     []BOQItem `json:"items"`
	Rationale string    `json:"rationale,omitempty"`
	ROI       any       `json:"roi,omitempty"`
	DesignDNA any       `json:"designDNA,omitempty"`
}

// DefaultBOQArea is substituted when a request carries no positive area.
const DefaultBOQArea = 200.0

// AreaOrDefault returns the request area, or DefaultBOQArea when it is not positive.
func (r BOQRequest) AreaOrDefault() float64 {
	if r.Area <= 0 {
		return DefaultBOQArea
	}
	return r.Area
}
