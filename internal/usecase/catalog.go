package usecase

import (
	"sort"
	"strings"

	"interiorquote/internal/domain/entities"
)

// FallbackCostConfig prices items that match no active catalog entry.
var FallbackCostConfig = entities.CostConfig{
	BasePrice:        50,
	LaborCostPerUnit: 10,
	Unit:             "unit",
}

// Catalog is an immutable lookup over the active pricing entries.
//
// Entries are ordered by (category, item type, id) before indexing, so when
// several entries share a key the first one in that order wins regardless of
// how the store enumerated them.
type Catalog struct {
	byItemType map[string]entities.CostConfig
	byCategory map[string]entities.CostConfig
}

func NewCatalog(entries []entities.CostConfig) Catalog {
	active := make([]entities.CostConfig, 0, len(entries))
	for _, e := range entries {
		if e.IsActive {
			active = append(active, e)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i], active[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.ItemType != b.ItemType {
			return a.ItemType < b.ItemType
		}
		return a.ID < b.ID
	})

	c := Catalog{
		byItemType: make(map[string]entities.CostConfig, len(active)),
		byCategory: make(map[string]entities.CostConfig, len(active)),
	}
	for _, e := range active {
		if k := catalogKey(e.ItemType); k != "" {
			if _, ok := c.byItemType[k]; !ok {
				c.byItemType[k] = e
			}
		}
		if k := catalogKey(e.Category); k != "" {
			if _, ok := c.byCategory[k]; !ok {
				c.byCategory[k] = e
			}
		}
	}
	return c
}

// Lookup matches itemType first and category second, both case-insensitive.
// ok is false when the fallback entry was returned.
func (c Catalog) Lookup(category, itemType string) (entities.CostConfig, bool) {
	if k := catalogKey(itemType); k != "" {
		if e, ok := c.byItemType[k]; ok {
			return e, true
		}
	}
	if k := catalogKey(category); k != "" {
		if e, ok := c.byCategory[k]; ok {
			return e, true
		}
	}
	return FallbackCostConfig, false
}

// Len is the number of distinct item types indexed.
func (c Catalog) Len() int { return len(c.byItemType) }

func catalogKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
