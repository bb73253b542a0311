// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// InvoiceNumberPrefix is the prefix of generated invoice numbers (INV-0001, ...).
const InvoiceNumberPrefix = "INV-"

// InvoiceItem represents a single line item on an invoice. Total is derived
// (quantity * price) and overwrites any caller-supplied value on save.
type InvoiceItem struct {
	Description string
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
}

// Invoice represents a bill to a client with line items. Subtotal, Tax and
// Total are derived from the items and tax rate on every create and update.
type Invoice struct {
	ID            uuid.UUID
	InvoiceNumber string
	ClientName    string
	ClientEmail   string
	ClientAddress string
	Items         []InvoiceItem
	Subtotal      decimal.Decimal
	TaxRate       decimal.Decimal // Percentage in [0,100]
	Tax           decimal.Decimal
	Total         decimal.Decimal
	IssueDate     time.Time
	DueDate       time.Time
	Status        InvoiceStatus
	PaymentDate   *time.Time
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewInvoice creates a new Invoice entity. Derived fields are left zero; the
// invoice use cases compute them before persistence. A zero issue date
// defaults to the creation time.
func NewInvoice(
	invoiceNumber string,
	clientName, clientEmail, clientAddress string,
	items []InvoiceItem,
	taxRate decimal.Decimal,
	issueDate, dueDate time.Time,
	status InvoiceStatus,
	notes string,
) *Invoice {
	now := time.Now().UTC()

	if issueDate.IsZero() {
		issueDate = now
	}
	if status == "" {
		status = InvoiceStatusPending
	}

	return &Invoice{
		ID:            uuid.New(),
		InvoiceNumber: invoiceNumber,
		ClientName:    clientName,
		ClientEmail:   clientEmail,
		ClientAddress: clientAddress,
		Items:         items,
		TaxRate:       taxRate,
		IssueDate:     issueDate,
		DueDate:       dueDate,
		Status:        status,
		Notes:         notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// DaysUntilDue returns the number of whole days until the due date, negative
// when the invoice is past due. Matches the ceil semantics of the API's
// read-only daysUntilDue field.
func (i *Invoice) DaysUntilDue(now time.Time) int {
	diff := i.DueDate.Sub(now)
	days := int(diff.Hours() / 24)
	if diff > 0 && diff%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// InvoiceStatusCounts represents invoice counts grouped by status.
type InvoiceStatusCounts struct {
	Total   int64
	Paid    int64
	Pending int64
	Overdue int64
}

// InvoiceAmountByStatus represents the summed invoice total for one status.
type InvoiceAmountByStatus struct {
	Status InvoiceStatus
	Total  decimal.Decimal
}
