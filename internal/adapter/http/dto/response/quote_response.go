package response

import (
	"time"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase"
)

type QuoteItemResponse struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit,omitempty"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type QuoteResponse struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"project_id"`
	Items       []QuoteItemResponse `json:"items"`
	TotalAmount float64             `json:"total_amount"`
	Version     int                 `json:"version"`
	Status      string              `json:"status"`
	ValidUntil  time.Time           `json:"valid_until"`
	DocumentURL string              `json:"document_url,omitempty"`
	Rationale   string              `json:"rationale,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse(it))
	}
	return QuoteResponse{
		ID:          q.ID,
		ProjectID:   q.ProjectID,
		Items:       items,
		TotalAmount: q.TotalAmount,
		Version:     q.Version,
		Status:      string(q.Status),
		ValidUntil:  q.ValidUntil,
		DocumentURL: q.DocumentURL,
		Rationale:   q.Rationale,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// FinalizeResponse tells the admin whether the client was actually notified.
type FinalizeResponse struct {
	Quote            QuoteResponse `json:"quote"`
	Outcome          string        `json:"outcome"`
	NotificationSent bool          `json:"notification_sent"`
}

func FromFinalizeResult(r usecase.FinalizeResult) FinalizeResponse {
	return FinalizeResponse{
		Quote:            FromQuote(r.Quote),
		Outcome:          string(r.Outcome),
		NotificationSent: r.Outcome == usecase.FinalizeOutcomeSent,
	}
}
