package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
//
// Domain notes:
//   - draft -> sent is driven by the lifecycle (generate / finalize).
//   - approved and rejected are terminal and only reachable from sent; they are
//     settled externally (client decision), not by the quoting workflow.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// DefaultQuoteValidity is the validity window applied on every generation.
const DefaultQuoteValidity = 30 * 24 * time.Hour

// QuoteItem is one priced line of a quote.
type QuoteItem struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit,omitempty"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Quote is the priced proposal for a project.
//
// Storage model:
//   - PK: id
//   - one current quote per project (lookup by project_id); regenerating
//     overwrites items in place and bumps Version.
//
// Invariants:
//   - TotalAmount == sum(Items[i].TotalPrice)
//   - Items[i].TotalPrice == Items[i].Quantity * Items[i].UnitPrice
type Quote struct {
	ID          string      `json:"id"`
	ProjectID   string      `json:"project_id"`
	Items       []QuoteItem `json:"items"`
	TotalAmount float64     `json:"total_amount"`
	Version     int         `json:"version"`
	Status      QuoteStatus `json:"status"`
	ValidUntil  time.Time   `json:"valid_until"`
	DocumentURL string      `json:"document_url,omitempty"`
	Rationale   string      `json:"rationale,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// SumItems returns the grand total of the given items as stored.
func SumItems(items []QuoteItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.TotalPrice
	}
	return total
}
