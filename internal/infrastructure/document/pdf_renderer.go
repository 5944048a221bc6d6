package document

import (
	"context"
	"fmt"
	"time"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"
	"interiorquote/pkg"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

const dateLayout = "02 Jan 2006"

var (
	mutedColor  = &props.Color{Red: 90, Green: 90, Blue: 90}
	headerBg    = &props.Color{Red: 33, Green: 37, Blue: 41}
	stripeBg    = &props.Color{Red: 245, Green: 245, Blue: 245}
	totalBg     = &props.Color{Red: 235, Green: 235, Blue: 235}
	headerLabel = props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Center, Color: &props.Color{Red: 255, Green: 255, Blue: 255}}
)

// PDFRenderer lays a quote document out as an A4 PDF, one document page per
// PDF page.
type PDFRenderer struct{}

var _ interfaces.IQuoteRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) Render(_ context.Context, doc entities.QuoteDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)
	for i, p := range doc.Pages {
		rows := headerRows(doc)
		rows = append(rows, tableHeaderRow())
		for _, it := range p.Rows {
			rows = append(rows, itemRow(doc.Issuer.Currency, it))
		}
		if i == len(doc.Pages)-1 {
			rows = append(rows, totalRows(doc)...)
		}
		m.AddPages(page.New().Add(rows...))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return out.GetBytes(), nil
}

func headerRows(doc entities.QuoteDocument) []core.Row {
	muted := props.Text{Size: 8, Color: mutedColor}
	mutedRight := props.Text{Size: 8, Color: mutedColor, Align: align.Right}

	rows := []core.Row{
		row.New(10).Add(
			col.New(7).Add(text.New(doc.Issuer.Name, props.Text{Size: 15, Style: fontstyle.Bold})),
			col.New(5).Add(text.New("QUOTATION", props.Text{Size: 15, Style: fontstyle.Bold, Align: align.Right})),
		),
		row.New(5).Add(
			col.New(7).Add(text.New(doc.Issuer.Address, muted)),
			col.New(5).Add(text.New(fmt.Sprintf("Quote %s (v%d)", doc.QuoteID, doc.Version), mutedRight)),
		),
		row.New(5).Add(
			col.New(7).Add(text.New(joinNonEmpty(" | ", doc.Issuer.Email, doc.Issuer.Phone), muted)),
			col.New(5).Add(text.New("Date: "+formatDate(doc.IssuedAt), mutedRight)),
		),
		row.New(5).Add(
			col.New(7),
			col.New(5).Add(text.New("Valid until: "+formatDate(doc.ValidUntil), mutedRight)),
		),
		row.New(4),
		row.New(6).Add(col.New(12).Add(text.New("Bill to", props.Text{Size: 9, Style: fontstyle.Bold}))),
		row.New(5).Add(col.New(12).Add(text.New(doc.ClientName, props.Text{Size: 9}))),
		row.New(5).Add(col.New(12).Add(text.New(joinNonEmpty(" | ", doc.ClientEmail, doc.ClientPhone), muted))),
		row.New(4),
		row.New(6).Add(col.New(12).Add(text.New(joinNonEmpty(": ", doc.ProjectTitle, doc.ProjectLine), props.Text{Size: 9, Style: fontstyle.Bold}))),
		row.New(3),
	}
	return rows
}

func tableHeaderRow() core.Row {
	left := headerLabel
	left.Align = align.Left
	cell := &props.Cell{BackgroundColor: headerBg}

	return row.New(8).Add(
		col.New(1).Add(text.New("#", headerLabel)).WithStyle(cell),
		col.New(4).Add(text.New("Item", left)).WithStyle(cell),
		col.New(2).Add(text.New("Category", headerLabel)).WithStyle(cell),
		col.New(1).Add(text.New("Quantity", headerLabel)).WithStyle(cell),
		col.New(2).Add(text.New("Unit Price", headerLabel)).WithStyle(cell),
		col.New(2).Add(text.New("Total", headerLabel)).WithStyle(cell),
	)
}

func itemRow(currency string, it entities.QuoteDocumentRow) core.Row {
	base := props.Text{Size: 8, Align: align.Center}
	left := base
	left.Align = align.Left
	right := base
	right.Align = align.Right

	qty := pkg.FormatQuantity(it.Quantity)
	if it.Unit != "" {
		qty += " " + it.Unit
	}

	cols := []core.Col{
		col.New(1).Add(text.New(fmt.Sprintf("%d", it.Index), base)),
		col.New(4).Add(text.New(it.Name, left)),
		col.New(2).Add(text.New(it.Category, base)),
		col.New(1).Add(text.New(qty, right)),
		col.New(2).Add(text.New(pkg.FormatAmount(currency, it.UnitPrice), right)),
		col.New(2).Add(text.New(pkg.FormatAmount(currency, it.Total), right)),
	}
	if it.Index%2 == 0 {
		for i := range cols {
			cols[i] = cols[i].WithStyle(&props.Cell{BackgroundColor: stripeBg})
		}
	}
	return row.New(7).Add(cols...)
}

func totalRows(doc entities.QuoteDocument) []core.Row {
	cell := &props.Cell{BackgroundColor: totalBg}
	bold := props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right}

	return []core.Row{
		row.New(3),
		row.New(9).Add(
			col.New(8).Add(text.New("Grand Total", bold)).WithStyle(cell),
			col.New(4).Add(text.New(pkg.FormatAmount(doc.Issuer.Currency, doc.GrandTotal), bold)).WithStyle(cell),
		),
		row.New(8),
		row.New(12).Add(
			col.New(12).Add(text.New(doc.Disclaimer, props.Text{Size: 7, Color: mutedColor, Style: fontstyle.Italic})),
		),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
