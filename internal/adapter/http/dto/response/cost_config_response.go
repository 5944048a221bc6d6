package response

import (
	"time"

	"interiorquote/internal/domain/entities"
)

type CostConfigResponse struct {
	ID               string    `json:"id"`
	Category         string    `json:"category"`
	ItemType         string    `json:"item_type"`
	BasePrice        float64   `json:"base_price"`
	Unit             string    `json:"unit"`
	LaborCostPerUnit float64   `json:"labor_cost_per_unit"`
	UnitPrice        float64   `json:"unit_price"`
	IsActive         bool      `json:"is_active"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromCostConfig(c entities.CostConfig) CostConfigResponse {
	return CostConfigResponse{
		ID:               c.ID,
		Category:         c.Category,
		ItemType:         c.ItemType,
		BasePrice:        c.BasePrice,
		Unit:             c.Unit,
		LaborCostPerUnit: c.LaborCostPerUnit,
		UnitPrice:        c.UnitPrice(),
		IsActive:         c.IsActive,
		UpdatedAt:        c.UpdatedAt,
	}
}

func FromCostConfigs(cs []entities.CostConfig) []CostConfigResponse {
	out := make([]CostConfigResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCostConfig(c))
	}
	return out
}
