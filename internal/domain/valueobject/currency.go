// Package valueobject defines immutable domain value objects.
package valueobject

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the active display currency, selected once from configuration
// and threaded explicitly to every formatting boundary (emails, reports).
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

var currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"LKR": {Code: "LKR", Symbol: "Rs.", Name: "Sri Lankan Rupee"},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound"},
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	"JPY": {Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	"AUD": {Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	"CAD": {Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
}

// CurrencyFromCode resolves a currency by its ISO code. Unknown codes fall
// back to USD.
func CurrencyFromCode(code string) Currency {
	if c, ok := currencies[strings.ToUpper(code)]; ok {
		return c
	}
	return currencies["USD"]
}

// Format renders an amount with the currency symbol and two decimal places,
// grouping the integer part with thousands separators ("$ 25,000.00").
func (c Currency) Format(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)

	return c.Symbol + " " + b.String()
}
