package invoice

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// InvoiceItemOutput represents a line item in use case output.
type InvoiceItemOutput struct {
	Description string
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
}

// InvoiceOutput represents invoice data in use case output. DaysUntilDue is
// derived at read time and never stored.
type InvoiceOutput struct {
	ID            uuid.UUID
	InvoiceNumber string
	ClientName    string
	ClientEmail   string
	ClientAddress string
	Items         []InvoiceItemOutput
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	IssueDate     time.Time
	DueDate       time.Time
	Status        entity.InvoiceStatus
	PaymentDate   *time.Time
	Notes         string
	DaysUntilDue  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ToInvoiceOutput(inv *entity.Invoice) *InvoiceOutput {
	items := make([]InvoiceItemOutput, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemOutput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
		}
	}

	return &InvoiceOutput{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientAddress: inv.ClientAddress,
		Items:         items,
		Subtotal:      inv.Subtotal,
		TaxRate:       inv.TaxRate,
		Tax:           inv.Tax,
		Total:         inv.Total,
		IssueDate:     inv.IssueDate,
		DueDate:       inv.DueDate,
		Status:        inv.Status,
		PaymentDate:   inv.PaymentDate,
		Notes:         inv.Notes,
		DaysUntilDue:  inv.DaysUntilDue(time.Now().UTC()),
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}
