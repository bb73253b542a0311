package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// InvoiceFilter represents filter criteria for invoice queries. The date
// bounds apply to the issue date.
type InvoiceFilter struct {
	Status    *entity.InvoiceStatus
	StartDate *time.Time
	EndDate   *time.Time
}

// InvoiceRepository defines the interface for invoice persistence operations.
type InvoiceRepository interface {
	// Create persists a new invoice with its line items. A collision on the
	// invoice number returns domain ErrDuplicateInvoiceNumber.
	Create(ctx context.Context, invoice *entity.Invoice) error

	// FindByID retrieves an invoice with its line items by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)

	// FindByFilter retrieves invoices matching the filter, newest first.
	FindByFilter(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)

	// Update persists changes to an existing invoice, replacing its line items.
	Update(ctx context.Context, invoice *entity.Invoice) error

	// Delete removes an invoice and its line items.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListInvoiceNumbers returns every stored invoice number. Used by the
	// numbering policy's scan-then-assign generation.
	ListInvoiceNumbers(ctx context.Context) ([]string, error)

	// CountByStatus returns invoice counts per status.
	CountByStatus(ctx context.Context) (*entity.InvoiceStatusCounts, error)

	// GetAmountByStatus returns the summed invoice total grouped by status.
	GetAmountByStatus(ctx context.Context) ([]entity.InvoiceAmountByStatus, error)

	// GetTotalAmount returns the summed total over all invoices.
	GetTotalAmount(ctx context.Context) (decimal.Decimal, error)

	// GetOutstandingAmount returns the summed total of pending and overdue invoices.
	GetOutstandingAmount(ctx context.Context) (decimal.Decimal, error)
}
