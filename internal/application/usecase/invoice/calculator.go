// Package invoice contains invoice-related use cases.
package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// CalculateTotals recomputes every derived money field on the invoice from
// its line items and tax rate. Caller-supplied values for item totals,
// subtotal, tax and total are overwritten; clients cannot inflate or deflate
// an invoice by sending bogus totals.
func CalculateTotals(inv *entity.Invoice) {
	subtotal := decimal.Zero

	for i := range inv.Items {
		item := &inv.Items[i]
		item.Total = item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(item.Total)
	}

	inv.Subtotal = subtotal
	inv.Tax = subtotal.Mul(inv.TaxRate).Div(hundred)
	inv.Total = inv.Subtotal.Add(inv.Tax)
}
