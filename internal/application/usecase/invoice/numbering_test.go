package invoice

import "testing"

func TestNextInvoiceNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{
			name:     "no existing invoices",
			existing: nil,
			want:     "INV-0001",
		},
		{
			name:     "increments highest suffix",
			existing: []string{"INV-0001", "INV-0003", "INV-0002"},
			want:     "INV-0004",
		},
		{
			name:     "ignores malformed suffixes",
			existing: []string{"INV-0007", "INV-abc", "INV-"},
			want:     "INV-0008",
		},
		{
			name:     "ignores foreign prefixes",
			existing: []string{"Q-2024-01", "INV-0002", "2024-INV-9"},
			want:     "INV-0003",
		},
		{
			name:     "all malformed falls back to start",
			existing: []string{"INV-x", "draft"},
			want:     "INV-0001",
		},
		{
			name:     "grows past four digits",
			existing: []string{"INV-9999"},
			want:     "INV-10000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextInvoiceNumber(tt.existing); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
