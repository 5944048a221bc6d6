package usecase

import (
	"fmt"
	"strings"

	"interiorquote/internal/domain/entities"
	"interiorquote/pkg"
)

// RowsPerPage is the item-table row budget of one document page.
const RowsPerPage = 18

const QuoteDisclaimer = "This quote is an estimate based on the information provided. " +
	"Final pricing may vary after site inspection. Prices are valid until the date shown above."

// BuildQuoteDocument lays out a quote for rendering. It does no I/O and uses
// only the quote's own timestamps, so the same inputs always give the same
// document.
func BuildQuoteDocument(q entities.Quote, p entities.Project, issuer entities.Issuer) entities.QuoteDocument {
	doc := entities.QuoteDocument{
		Issuer:       issuer,
		QuoteID:      q.ID,
		Version:      q.Version,
		IssuedAt:     q.UpdatedAt,
		ValidUntil:   q.ValidUntil,
		ClientName:   p.Client.Name,
		ClientEmail:  p.Client.Email,
		ClientPhone:  p.Client.Phone,
		ProjectTitle: p.Title,
		ProjectLine:  projectLine(p),
		Disclaimer:   QuoteDisclaimer,
	}

	page := entities.QuoteDocumentPage{Number: 1}
	for i, it := range q.Items {
		if len(page.Rows) == RowsPerPage {
			doc.Pages = append(doc.Pages, page)
			page = entities.QuoteDocumentPage{Number: page.Number + 1}
		}
		row := entities.QuoteDocumentRow{
			Index:     i + 1,
			Name:      it.Name,
			Category:  it.Category,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: it.UnitPrice,
			Total:     it.Quantity * it.UnitPrice,
		}
		doc.GrandTotal += row.Total
		page.Rows = append(page.Rows, row)
	}
	doc.Pages = append(doc.Pages, page)
	return doc
}

func projectLine(p entities.Project) string {
	parts := make([]string, 0, 4)
	for _, s := range []string{p.SpaceType, p.ProjectType, p.Style.Name} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if p.AreaSqft > 0 {
		parts = append(parts, pkg.FormatQuantity(p.AreaSqft)+" sqft")
	}
	return strings.Join(parts, " | ")
}

// artifactObjectName builds quotes/<quoteID>/<slug>-<unixnano>-<suffix>.<ext>.
func artifactObjectName(quoteID, title, suffix, ext string, unixNano int64) string {
	return fmt.Sprintf("quotes/%s/%s-%d-%s.%s", quoteID, pkg.Slugify(title, "quote"), unixNano, suffix, ext)
}
