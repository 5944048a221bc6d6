package usecase

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"interiorquote/internal/domain/entities"

	"github.com/stretchr/testify/require"
)

func TestBuildQuoteDocument(t *testing.T) {
	updated := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	project := entities.Project{
		ID:          "p-1",
		Title:       "Sea View Apartment",
		Client:      entities.ClientContact{Name: "Ana", Email: "ana@example.com"},
		SpaceType:   "Living Room",
		ProjectType: "Renovation",
		AreaSqft:    200,
		Style:       entities.StylePreferences{Name: "Modern"},
	}

	t.Run("paginates by row budget and recomputes the total", func(t *testing.T) {
		items := make([]entities.QuoteItem, 40)
		for i := range items {
			items[i] = entities.QuoteItem{Name: fmt.Sprintf("item %d", i), Quantity: 2, UnitPrice: 10, TotalPrice: 1}
		}
		q := entities.Quote{ID: "q-1", Items: items, TotalAmount: 1, Version: 3, UpdatedAt: updated}

		doc := BuildQuoteDocument(q, project, entities.Issuer{Name: "Studio"})
		require.Len(t, doc.Pages, 3)
		require.Len(t, doc.Pages[0].Rows, RowsPerPage)
		require.Len(t, doc.Pages[1].Rows, RowsPerPage)
		require.Len(t, doc.Pages[2].Rows, 4)
		require.Equal(t, 3, doc.Pages[2].Number)
		require.Equal(t, 40, doc.Pages[2].Rows[3].Index)
		require.Equal(t, 800.0, doc.GrandTotal)
		require.Equal(t, updated, doc.IssuedAt)
		require.Equal(t, "Living Room | Renovation | Modern | 200 sqft", doc.ProjectLine)
	})

	t.Run("empty quote still has one page", func(t *testing.T) {
		doc := BuildQuoteDocument(entities.Quote{ID: "q-2"}, entities.Project{}, entities.Issuer{})
		require.Len(t, doc.Pages, 1)
		require.Empty(t, doc.Pages[0].Rows)
		require.Equal(t, "", doc.ProjectLine)
		require.Zero(t, doc.GrandTotal)
	})

	t.Run("deterministic", func(t *testing.T) {
		q := entities.Quote{ID: "q-3", Items: []entities.QuoteItem{{Name: "a", Quantity: 1, UnitPrice: 2}}, UpdatedAt: updated}
		require.Equal(t, BuildQuoteDocument(q, project, entities.Issuer{}), BuildQuoteDocument(q, project, entities.Issuer{}))
	})
}

func TestArtifactObjectName(t *testing.T) {
	name := artifactObjectName("q-1", "Sea View Apartment!", "abcd1234", "pdf", 42)
	require.Equal(t, "quotes/q-1/sea-view-apartment-42-abcd1234.pdf", name)
	require.True(t, strings.HasPrefix(artifactObjectName("q-1", "", "x", "pdf", 1), "quotes/q-1/quote-1-"))
}
