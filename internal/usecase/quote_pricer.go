package usecase

import (
	"math"
	"strings"

	"interiorquote/internal/domain/entities"
)

// PriceItems joins generated BOQ lines against the catalog.
// unitPrice = basePrice + laborCostPerUnit; totalPrice = unitPrice * quantity.
func PriceItems(items []entities.BOQItem, catalog Catalog) ([]entities.QuoteItem, float64) {
	out := make([]entities.QuoteItem, 0, len(items))
	total := 0.0
	for _, it := range items {
		entry, _ := catalog.Lookup(it.Category, it.ItemType)

		qty := it.Quantity
		if qty < 0 || math.IsNaN(qty) {
			qty = 0
		}
		unit := strings.TrimSpace(it.Unit)
		if unit == "" {
			unit = entry.Unit
		}
		name := strings.TrimSpace(it.ItemType)
		if name == "" {
			name = strings.TrimSpace(it.Category)
		}

		unitPrice := entry.UnitPrice()
		line := entities.QuoteItem{
			Name:       name,
			Category:   it.Category,
			Quantity:   qty,
			Unit:       unit,
			UnitPrice:  unitPrice,
			TotalPrice: unitPrice * qty,
		}
		total += line.TotalPrice
		out = append(out, line)
	}
	return out, total
}

// RecomputeItems derives totalPrice for admin-supplied lines and returns the
// grand total. The input slice is not modified.
func RecomputeItems(items []entities.QuoteItem) ([]entities.QuoteItem, float64) {
	out := make([]entities.QuoteItem, len(items))
	total := 0.0
	for i, it := range items {
		it.TotalPrice = it.Quantity * it.UnitPrice
		total += it.TotalPrice
		out[i] = it
	}
	return out, total
}

func validateQuoteItems(items []entities.QuoteItem) error {
	if len(items) == 0 {
		return ErrInvalidItems
	}
	for _, it := range items {
		if badNumber(it.Quantity) || badNumber(it.UnitPrice) {
			return ErrInvalidItems
		}
		if strings.TrimSpace(it.Name) == "" && strings.TrimSpace(it.Category) == "" {
			return ErrInvalidItems
		}
	}
	return nil
}

func badNumber(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}
