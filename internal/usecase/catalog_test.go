package usecase

import (
	"testing"

	"interiorquote/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestCatalog_Lookup(t *testing.T) {
	entries := []entities.CostConfig{
		{ID: "3", Category: "Flooring", ItemType: "Vitrified Tiles", BasePrice: 60, LaborCostPerUnit: 20, IsActive: true},
		{ID: "1", Category: "Flooring", ItemType: "Engineered Wood", BasePrice: 85, LaborCostPerUnit: 15, IsActive: true},
		{ID: "2", Category: "Wall", ItemType: "Premium Emulsion", BasePrice: 25, LaborCostPerUnit: 10, IsActive: false},
	}
	c := NewCatalog(entries)

	t.Run("item type match is case insensitive", func(t *testing.T) {
		e, ok := c.Lookup("whatever", "  engineered WOOD ")
		require.True(t, ok)
		require.Equal(t, "1", e.ID)
		require.Equal(t, 100.0, e.UnitPrice())
	})

	t.Run("category fallback picks first in sorted order", func(t *testing.T) {
		e, ok := c.Lookup("flooring", "Bamboo")
		require.True(t, ok)
		require.Equal(t, "Engineered Wood", e.ItemType)
	})

	t.Run("inactive entries are ignored", func(t *testing.T) {
		e, ok := c.Lookup("Wall", "Premium Emulsion")
		require.False(t, ok)
		require.Equal(t, 60.0, e.UnitPrice())
	})

	t.Run("empty keys never match", func(t *testing.T) {
		_, ok := c.Lookup("", "")
		require.False(t, ok)
	})

	t.Run("result does not depend on input order", func(t *testing.T) {
		reversed := []entities.CostConfig{entries[2], entries[1], entries[0]}
		a, _ := NewCatalog(entries).Lookup("Flooring", "unknown")
		b, _ := NewCatalog(reversed).Lookup("Flooring", "unknown")
		require.Equal(t, a, b)
	})

	t.Run("duplicate item types resolve by id", func(t *testing.T) {
		dup := NewCatalog([]entities.CostConfig{
			{ID: "b", Category: "Lighting", ItemType: "Chandelier", BasePrice: 2, IsActive: true},
			{ID: "a", Category: "Lighting", ItemType: "Chandelier", BasePrice: 1, IsActive: true},
		})
		e, ok := dup.Lookup("", "chandelier")
		require.True(t, ok)
		require.Equal(t, "a", e.ID)
		require.Equal(t, 1, dup.Len())
	})
}
