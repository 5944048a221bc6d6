package document

import (
	"bytes"
	"context"
	"fmt"

	"interiorquote/internal/domain/entities"
	"interiorquote/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const quoteSheet = "Quote"

// ExcelExporter writes the quote item table to a single-sheet workbook.
// Amounts are numeric cells so the sheet can be edited and summed.
type ExcelExporter struct{}

var _ interfaces.IQuoteRenderer = (*ExcelExporter)(nil)

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) Render(_ context.Context, doc entities.QuoteDocument) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), quoteSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	widths := []float64{6, 36, 16, 10, 8, 16, 18}
	for i, c := range columns {
		if err := f.SetColWidth(quoteSheet, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return nil, fmt.Errorf("title style: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#212529"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("header style: %w", err)
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("money style: %w", err)
	}
	totalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &moneyFmt})
	if err != nil {
		return nil, fmt.Errorf("total style: %w", err)
	}

	meta := [][2]string{
		{"A1", sanitizeExcelCell(doc.Issuer.Name)},
		{"A2", fmt.Sprintf("Quote %s (v%d)", doc.QuoteID, doc.Version)},
		{"A3", "Client: " + sanitizeExcelCell(doc.ClientName)},
		{"A4", "Project: " + sanitizeExcelCell(joinNonEmpty(" | ", doc.ProjectTitle, doc.ProjectLine))},
		{"A5", "Valid until: " + formatDate(doc.ValidUntil)},
	}
	for _, kv := range meta {
		if err := f.SetCellValue(quoteSheet, kv[0], kv[1]); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(quoteSheet, "A1", "A1", titleStyle); err != nil {
		return nil, err
	}

	const headerRow = 7
	for i, h := range []string{"#", "Item", "Category", "Quantity", "Unit", "Unit Price", "Total"} {
		if err := f.SetCellValue(quoteSheet, fmt.Sprintf("%s%d", columns[i], headerRow), h); err != nil {
			return nil, err
		}
	}
	if err := f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", headerRow), fmt.Sprintf("G%d", headerRow), headerStyle); err != nil {
		return nil, err
	}

	r := headerRow + 1
	for _, p := range doc.Pages {
		for _, it := range p.Rows {
			values := []any{it.Index, sanitizeExcelCell(it.Name), sanitizeExcelCell(it.Category), it.Quantity, sanitizeExcelCell(it.Unit), it.UnitPrice, it.Total}
			if err := f.SetSheetRow(quoteSheet, fmt.Sprintf("A%d", r), &values); err != nil {
				return nil, fmt.Errorf("write row %d: %w", r, err)
			}
			if err := f.SetCellStyle(quoteSheet, fmt.Sprintf("F%d", r), fmt.Sprintf("G%d", r), moneyStyle); err != nil {
				return nil, err
			}
			r++
		}
	}

	r++
	if err := f.SetCellValue(quoteSheet, fmt.Sprintf("F%d", r), "Grand Total"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(quoteSheet, fmt.Sprintf("G%d", r), doc.GrandTotal); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(quoteSheet, fmt.Sprintf("F%d", r), fmt.Sprintf("G%d", r), totalStyle); err != nil {
		return nil, err
	}
	if doc.Disclaimer != "" {
		if err := f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", r+2), doc.Disclaimer); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prefixes values Excel would evaluate as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
