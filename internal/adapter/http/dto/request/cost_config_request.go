package request

import (
	"strings"

	"interiorquote/internal/domain/entities"
)

// CostConfigRequest upserts a catalog entry by item_type. IsActive defaults
// to true when omitted.
type CostConfigRequest struct {
	Category         string  `json:"category" binding:"required"`
	ItemType         string  `json:"item_type" binding:"required"`
	BasePrice        float64 `json:"base_price"`
	Unit             string  `json:"unit"`
	LaborCostPerUnit float64 `json:"labor_cost_per_unit"`
	IsActive         *bool   `json:"is_active"`
}

func (r CostConfigRequest) ToEntity() entities.CostConfig {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return entities.CostConfig{
		Category:         strings.TrimSpace(r.Category),
		ItemType:         strings.TrimSpace(r.ItemType),
		BasePrice:        r.BasePrice,
		Unit:             strings.TrimSpace(r.Unit),
		LaborCostPerUnit: r.LaborCostPerUnit,
		IsActive:         active,
	}
}
