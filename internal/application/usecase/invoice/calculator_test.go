package invoice

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []entity.InvoiceItem
		taxRate      string
		wantSubtotal string
		wantTax      string
		wantTotal    string
	}{
		{
			name: "two items with tax",
			items: []entity.InvoiceItem{
				{Description: "Website design", Quantity: 1, Price: decimal.NewFromInt(20000)},
				{Description: "Hosting setup", Quantity: 1, Price: decimal.NewFromInt(5000)},
			},
			taxRate:      "10",
			wantSubtotal: "25000",
			wantTax:      "2500",
			wantTotal:    "27500",
		},
		{
			name: "quantity multiplies price",
			items: []entity.InvoiceItem{
				{Description: "Consulting hour", Quantity: 8, Price: decimal.NewFromInt(150)},
			},
			taxRate:      "0",
			wantSubtotal: "1200",
			wantTax:      "0",
			wantTotal:    "1200",
		},
		{
			name: "fractional tax rate",
			items: []entity.InvoiceItem{
				{Description: "Retainer", Quantity: 2, Price: decimal.NewFromInt(500)},
			},
			taxRate:      "7.5",
			wantSubtotal: "1000",
			wantTax:      "75",
			wantTotal:    "1075",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxRate, err := decimal.NewFromString(tt.taxRate)
			if err != nil {
				t.Fatalf("invalid tax rate fixture: %v", err)
			}

			inv := &entity.Invoice{Items: tt.items, TaxRate: taxRate}
			CalculateTotals(inv)

			if want, _ := decimal.NewFromString(tt.wantSubtotal); !inv.Subtotal.Equal(want) {
				t.Errorf("expected subtotal %s, got %s", want, inv.Subtotal)
			}
			if want, _ := decimal.NewFromString(tt.wantTax); !inv.Tax.Equal(want) {
				t.Errorf("expected tax %s, got %s", want, inv.Tax)
			}
			if want, _ := decimal.NewFromString(tt.wantTotal); !inv.Total.Equal(want) {
				t.Errorf("expected total %s, got %s", want, inv.Total)
			}
		})
	}

	t.Run("overwrites caller-supplied item totals", func(t *testing.T) {
		inv := &entity.Invoice{
			Items: []entity.InvoiceItem{
				{Description: "Audit", Quantity: 2, Price: decimal.NewFromInt(100), Total: decimal.NewFromInt(999999)},
			},
			TaxRate: decimal.Zero,
		}

		CalculateTotals(inv)

		if want := decimal.NewFromInt(200); !inv.Items[0].Total.Equal(want) {
			t.Errorf("expected item total %s, got %s", want, inv.Items[0].Total)
		}
		if want := decimal.NewFromInt(200); !inv.Total.Equal(want) {
			t.Errorf("expected total %s, got %s", want, inv.Total)
		}
	})
}
