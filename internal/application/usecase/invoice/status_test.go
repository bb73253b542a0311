package invoice

import (
	"testing"
	"time"

	"github.com/biz-manager/backend/internal/domain/entity"
)

func TestApplyStatusPolicy(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		status  entity.InvoiceStatus
		dueDate time.Time
		want    entity.InvoiceStatus
	}{
		{
			name:    "pending past due becomes overdue",
			status:  entity.InvoiceStatusPending,
			dueDate: now.AddDate(0, 0, -1),
			want:    entity.InvoiceStatusOverdue,
		},
		{
			name:    "pending before due stays pending",
			status:  entity.InvoiceStatusPending,
			dueDate: now.AddDate(0, 0, 5),
			want:    entity.InvoiceStatusPending,
		},
		{
			name:    "paid past due stays paid",
			status:  entity.InvoiceStatusPaid,
			dueDate: now.AddDate(0, 0, -30),
			want:    entity.InvoiceStatusPaid,
		},
		{
			name:    "overdue stays overdue",
			status:  entity.InvoiceStatusOverdue,
			dueDate: now.AddDate(0, 0, -10),
			want:    entity.InvoiceStatusOverdue,
		},
		{
			name:    "due exactly now stays pending",
			status:  entity.InvoiceStatusPending,
			dueDate: now,
			want:    entity.InvoiceStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &entity.Invoice{Status: tt.status, DueDate: tt.dueDate}
			ApplyStatusPolicy(inv, now)

			if inv.Status != tt.want {
				t.Errorf("expected status %s, got %s", tt.want, inv.Status)
			}
		})
	}
}

func TestDaysUntilDue(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		want    int
	}{
		{name: "due in exactly three days", dueDate: now.AddDate(0, 0, 3), want: 3},
		{name: "partial day rounds up", dueDate: now.Add(25 * time.Hour), want: 2},
		{name: "due now", dueDate: now, want: 0},
		{name: "past due", dueDate: now.Add(-36 * time.Hour), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &entity.Invoice{DueDate: tt.dueDate}
			if got := inv.DaysUntilDue(now); got != tt.want {
				t.Errorf("expected %d days, got %d", tt.want, got)
			}
		})
	}
}
