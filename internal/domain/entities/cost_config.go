package entities

import "time"

// CostConfig is one pricing catalog entry. ItemType is the unique key.
// Only active entries take part in quote pricing.
type CostConfig struct {
	ID               string    `json:"id"`
	Category         string    `json:"category"`
	ItemType         string    `json:"item_type"`
	BasePrice        float64   `json:"base_price"`
	Unit             string    `json:"unit"`
	LaborCostPerUnit float64   `json:"labor_cost_per_unit"`
	IsActive         bool      `json:"is_active"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// UnitPrice is the additive catalog price of one unit.
func (c CostConfig) UnitPrice() float64 {
	return c.BasePrice + c.LaborCostPerUnit
}
