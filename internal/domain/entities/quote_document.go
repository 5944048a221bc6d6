package entities

import "time"

// Issuer is the company block printed on every quote document.
type Issuer struct {
	Name     string
	Address  string
	Email    string
	Phone    string
	Currency string
}

// QuoteDocumentRow is one rendered item line.
type QuoteDocumentRow struct {
	Index     int
	Name      string
	Category  string
	Quantity  float64
	Unit      string
	UnitPrice float64
	Total     float64
}

// QuoteDocumentPage holds at most RowsPerPage rows.
type QuoteDocumentPage struct {
	Number int
	Rows   []QuoteDocumentRow
}

// QuoteDocument is the layout-independent content of a rendered quote.
// GrandTotal is recomputed from the rows, not copied from the quote.
type QuoteDocument struct {
	Issuer       Issuer
	QuoteID      string
	Version      int
	IssuedAt     time.Time
	ValidUntil   time.Time
	ClientName   string
	ClientEmail  string
	ClientPhone  string
	ProjectTitle string
	ProjectLine  string
	Pages        []QuoteDocumentPage
	GrandTotal   float64
	Disclaimer   string
}
