package pkg

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.English)

// FormatAmount renders v with thousands separators and two decimals,
// prefixed by currency when one is given ("INR 48,120.00").
func FormatAmount(currency string, v float64) string {
	s := amountPrinter.Sprintf("%.2f", v)
	if c := strings.TrimSpace(currency); c != "" {
		return c + " " + s
	}
	return s
}

// FormatQuantity drops the decimals of whole quantities.
func FormatQuantity(v float64) string {
	if v == float64(int64(v)) {
		return amountPrinter.Sprintf("%d", int64(v))
	}
	return amountPrinter.Sprintf("%.2f", v)
}
