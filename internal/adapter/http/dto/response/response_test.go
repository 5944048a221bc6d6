package response

import (
	"testing"
	"time"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:          "q-1",
		ProjectID:   "p-1",
		Items:       []entities.QuoteItem{{Name: "Sofa Set", Category: "Furniture", Quantity: 1, UnitPrice: 30000, TotalPrice: 30000}},
		TotalAmount: 30000,
		Version:     3,
		Status:      entities.QuoteStatusDraft,
		ValidUntil:  now.Add(entities.DefaultQuoteValidity),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res := FromQuote(q)
	if res.ID != "q-1" || res.ProjectID != "p-1" || res.Version != 3 || res.Status != "draft" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].TotalPrice != 30000 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}

	empty := FromQuote(entities.Quote{})
	if empty.Items == nil {
		t.Fatalf("items must encode as an empty array")
	}
}

func TestFromFinalizeResult(t *testing.T) {
	cases := map[usecase.FinalizeOutcome]bool{
		usecase.FinalizeOutcomeSent:                    true,
		usecase.FinalizeOutcomeSentWithoutNotification: false,
		usecase.FinalizeOutcomeNotificationFailed:      false,
	}
	for outcome, sent := range cases {
		t.Run(string(outcome), func(t *testing.T) {
			res := FromFinalizeResult(usecase.FinalizeResult{Quote: entities.Quote{ID: "q-1", Status: entities.QuoteStatusSent}, Outcome: outcome})
			if res.NotificationSent != sent || res.Outcome != string(outcome) || res.Quote.Status != "sent" {
				t.Fatalf("unexpected response: %+v", res)
			}
		})
	}
}

func TestFromCostConfig(t *testing.T) {
	res := FromCostConfig(entities.CostConfig{ItemType: "Sofa Set", BasePrice: 25000, LaborCostPerUnit: 5000, IsActive: true})
	if res.UnitPrice != 30000 {
		t.Fatalf("expected unit price 30000, got %v", res.UnitPrice)
	}
}

func TestFromProject(t *testing.T) {
	res := FromProject(entities.Project{ID: "p-1", Status: entities.ProjectStatusQuoted})
	if res.PhotoURLs == nil || res.Status != "quoted" {
		t.Fatalf("unexpected response: %+v", res)
	}
}
