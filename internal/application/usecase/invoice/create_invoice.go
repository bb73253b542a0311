package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// CreateInvoiceInput represents the input for invoice creation. A blank
// InvoiceNumber is replaced by the next generated number; a supplied one is
// kept and a collision surfaces as ErrDuplicateInvoiceNumber.
type CreateInvoiceInput struct {
	InvoiceNumber string
	ClientName    string
	ClientEmail   string
	ClientAddress string
	Items         []InvoiceItemInput
	TaxRate       decimal.Decimal
	IssueDate     time.Time
	DueDate       time.Time
	Status        entity.InvoiceStatus
	Notes         string
}

// InvoiceItemInput represents one line item in a write request. Any total the
// caller supplies is ignored.
type InvoiceItemInput struct {
	Description string
	Quantity    int
	Price       decimal.Decimal
}

// CreateInvoiceOutput represents the output of invoice creation.
type CreateInvoiceOutput struct {
	Invoice *InvoiceOutput
}

// CreateInvoiceUseCase handles invoice creation logic.
type CreateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewCreateInvoiceUseCase creates a new CreateInvoiceUseCase instance.
func NewCreateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute performs the invoice creation: validate, assign the invoice number
// (generated unless the caller supplied one), compute derived totals, apply
// the status policy and persist.
func (uc *CreateInvoiceUseCase) Execute(ctx context.Context, input CreateInvoiceInput) (*CreateInvoiceOutput, error) {
	if err := validateInvoiceFields(input.ClientName, input.Items, input.TaxRate, input.DueDate, input.Status); err != nil {
		return nil, err
	}

	invoiceNumber := input.InvoiceNumber
	if invoiceNumber == "" {
		numbers, err := uc.invoiceRepo.ListInvoiceNumbers(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list invoice numbers: %w", err)
		}
		invoiceNumber = NextInvoiceNumber(numbers)
	}

	items := make([]entity.InvoiceItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	inv := entity.NewInvoice(
		invoiceNumber,
		input.ClientName,
		input.ClientEmail,
		input.ClientAddress,
		items,
		input.TaxRate,
		input.IssueDate,
		input.DueDate,
		input.Status,
		input.Notes,
	)

	CalculateTotals(inv)
	ApplyStatusPolicy(inv, time.Now().UTC())

	if inv.Status == entity.InvoiceStatusPaid && inv.PaymentDate == nil {
		now := time.Now().UTC()
		inv.PaymentDate = &now
	}

	if err := uc.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	return &CreateInvoiceOutput{Invoice: ToInvoiceOutput(inv)}, nil
}

// validateInvoiceFields enforces the invoice write invariants shared by
// create and update.
func validateInvoiceFields(
	clientName string,
	items []InvoiceItemInput,
	taxRate decimal.Decimal,
	dueDate time.Time,
	status entity.InvoiceStatus,
) error {
	if clientName == "" {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeMissingClientName,
			"client name is required",
			domainerror.ErrMissingClientName,
		)
	}

	if len(items) == 0 {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeEmptyInvoiceItems,
			"invoice must have at least one item",
			domainerror.ErrEmptyInvoiceItems,
		)
	}

	for _, item := range items {
		if item.Description == "" {
			return domainerror.NewInvoiceError(
				domainerror.ErrCodeMissingItemDescription,
				"item description is required",
				domainerror.ErrMissingItemDescription,
			)
		}
		if item.Quantity < 1 {
			return domainerror.NewInvoiceError(
				domainerror.ErrCodeInvalidItemQuantity,
				"item quantity must be at least 1",
				domainerror.ErrInvalidItemQuantity,
			)
		}
		if !item.Price.IsPositive() {
			return domainerror.NewInvoiceError(
				domainerror.ErrCodeInvalidItemPrice,
				"item price must be greater than zero",
				domainerror.ErrInvalidItemPrice,
			)
		}
	}

	if taxRate.IsNegative() || taxRate.GreaterThan(hundred) {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidTaxRate,
			"tax rate must be between 0 and 100",
			domainerror.ErrInvalidTaxRate,
		)
	}

	if dueDate.IsZero() {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeMissingDueDate,
			"due date is required",
			domainerror.ErrMissingDueDate,
		)
	}

	if status != "" && !isValidInvoiceStatus(status) {
		return domainerror.NewInvoiceError(
			domainerror.ErrCodeInvalidInvoiceStatus,
			"status must be 'pending', 'paid' or 'overdue'",
			domainerror.ErrInvalidInvoiceStatus,
		)
	}

	return nil
}

// isValidInvoiceStatus validates the invoice status.
func isValidInvoiceStatus(status entity.InvoiceStatus) bool {
	switch status {
	case entity.InvoiceStatusPending, entity.InvoiceStatusPaid, entity.InvoiceStatusOverdue:
		return true
	}
	return false
}
