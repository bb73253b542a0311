package campaign

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateMetrics(t *testing.T) {
	tests := []struct {
		name            string
		budget          string
		leads           int
		conversions     int
		wantCostPerLead string
		wantROI         string
	}{
		{
			name:            "typical campaign",
			budget:          "5000",
			leads:           250,
			conversions:     45,
			wantCostPerLead: "20",
			wantROI:         "80",
		},
		{
			name:            "no leads",
			budget:          "5000",
			leads:           0,
			conversions:     0,
			wantCostPerLead: "0",
			wantROI:         "-100",
		},
		{
			name:            "leads but no conversions",
			budget:          "1000",
			leads:           50,
			conversions:     0,
			wantCostPerLead: "20",
			wantROI:         "-100",
		},
		{
			name:            "zero budget with conversions",
			budget:          "0",
			leads:           10,
			conversions:     5,
			wantCostPerLead: "0",
			wantROI:         "0",
		},
		{
			name:            "break even",
			budget:          "1000",
			leads:           100,
			conversions:     10,
			wantCostPerLead: "10",
			wantROI:         "0",
		},
		{
			name:            "negative roi",
			budget:          "2000",
			leads:           100,
			conversions:     5,
			wantCostPerLead: "20",
			wantROI:         "-50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget, err := decimal.NewFromString(tt.budget)
			if err != nil {
				t.Fatalf("invalid budget fixture: %v", err)
			}

			costPerLead, roi := CalculateMetrics(budget, tt.leads, tt.conversions)

			if want, _ := decimal.NewFromString(tt.wantCostPerLead); !costPerLead.Equal(want) {
				t.Errorf("expected costPerLead %s, got %s", want, costPerLead)
			}
			if want, _ := decimal.NewFromString(tt.wantROI); !roi.Equal(want) {
				t.Errorf("expected roi %s, got %s", want, roi)
			}
		})
	}
}

func TestConversionRate(t *testing.T) {
	tests := []struct {
		name        string
		leads       int
		conversions int
		want        string
	}{
		{name: "typical", leads: 250, conversions: 45, want: "18"},
		{name: "no leads", leads: 0, conversions: 0, want: "0"},
		{name: "all converted", leads: 40, conversions: 40, want: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConversionRate(tt.leads, tt.conversions)
			if want, _ := decimal.NewFromString(tt.want); !got.Equal(want) {
				t.Errorf("expected conversion rate %s, got %s", want, got)
			}
		})
	}
}
