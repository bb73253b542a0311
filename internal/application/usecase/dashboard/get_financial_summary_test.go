package dashboard

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestProfitMargin(t *testing.T) {
	tests := []struct {
		name   string
		profit string
		income string
		want   string
	}{
		{name: "positive margin", profit: "2500", income: "10000", want: "25"},
		{name: "zero income", profit: "-500", income: "0", want: "0"},
		{name: "loss", profit: "-1000", income: "4000", want: "-25"},
		{name: "rounds to two decimals", profit: "1000", income: "3000", want: "33.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profit, _ := decimal.NewFromString(tt.profit)
			income, _ := decimal.NewFromString(tt.income)

			got := ProfitMargin(profit, income)
			if want, _ := decimal.NewFromString(tt.want); !got.Equal(want) {
				t.Errorf("expected margin %s, got %s", want, got)
			}
		})
	}
}
