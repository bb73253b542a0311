package invoice

import (
	"time"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// ApplyStatusPolicy flips an unpaid invoice to overdue when its due date has
// passed. It runs on every save; the paid status is terminal and a payment is
// never undone by the clock. The overdue transition is one-way: pushing the
// due date into the future does not restore pending.
func ApplyStatusPolicy(inv *entity.Invoice, now time.Time) {
	if inv.Status == entity.InvoiceStatusPaid {
		return
	}
	if inv.DueDate.Before(now) {
		inv.Status = entity.InvoiceStatusOverdue
	}
}
