package request

import (
	"bytes"
	"encoding/json"
	"errors"

	"interiorquote/internal/domain/entities"
)

var ErrItemsNotArray = errors.New("items must be a json array")

type QuoteItemRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	UnitPrice float64 `json:"unit_price"`
}

// UpdateItemsRequest replaces the item list of a quote. Items is kept raw so a
// non-array value is reported as a validation error instead of a bind error.
// ExpectedVersion of 0 skips the version check.
type UpdateItemsRequest struct {
	Items           json.RawMessage `json:"items"`
	ExpectedVersion int             `json:"expected_version"`
}

func (r UpdateItemsRequest) DecodeItems() ([]entities.QuoteItem, error) {
	raw := bytes.TrimSpace(r.Items)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrItemsNotArray
	}

	var in []QuoteItemRequest
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, ErrItemsNotArray
	}

	items := make([]entities.QuoteItem, 0, len(in))
	for _, it := range in {
		items = append(items, entities.QuoteItem{
			Name:      it.Name,
			Category:  it.Category,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
		})
	}
	return items, nil
}

type DecisionRequest struct {
	Status string `json:"status" binding:"required"`
}
