package invoice

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// UpdateInvoiceInput represents the input for invoice updates. Nil fields are
// left unchanged; a non-nil Items replaces the full line item set. The
// invoice number is immutable.
type UpdateInvoiceInput struct {
	ID            uuid.UUID
	ClientName    *string
	ClientEmail   *string
	ClientAddress *string
	Items         []InvoiceItemInput
	TaxRate       *decimal.Decimal
	IssueDate     *time.Time
	DueDate       *time.Time
	Status        *entity.InvoiceStatus
	Notes         *string
}

// UpdateInvoiceOutput represents the output of invoice updates.
type UpdateInvoiceOutput struct {
	Invoice *InvoiceOutput
}

// UpdateInvoiceUseCase handles invoice update logic.
type UpdateInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewUpdateInvoiceUseCase creates a new UpdateInvoiceUseCase instance.
func NewUpdateInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *UpdateInvoiceUseCase {
	return &UpdateInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute merges the provided fields into the stored invoice, re-validates
// the merged state, recomputes derived totals and re-applies the status
// policy before persisting.
func (uc *UpdateInvoiceUseCase) Execute(ctx context.Context, input UpdateInvoiceInput) (*UpdateInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.ClientName != nil {
		inv.ClientName = *input.ClientName
	}
	if input.ClientEmail != nil {
		inv.ClientEmail = *input.ClientEmail
	}
	if input.ClientAddress != nil {
		inv.ClientAddress = *input.ClientAddress
	}
	if input.Items != nil {
		items := make([]entity.InvoiceItem, len(input.Items))
		for i, item := range input.Items {
			items[i] = entity.InvoiceItem{
				Description: item.Description,
				Quantity:    item.Quantity,
				Price:       item.Price,
			}
		}
		inv.Items = items
	}
	if input.TaxRate != nil {
		inv.TaxRate = *input.TaxRate
	}
	if input.IssueDate != nil {
		inv.IssueDate = *input.IssueDate
	}
	if input.DueDate != nil {
		inv.DueDate = *input.DueDate
	}
	if input.Status != nil {
		inv.Status = *input.Status
	}
	if input.Notes != nil {
		inv.Notes = *input.Notes
	}

	mergedItems := make([]InvoiceItemInput, len(inv.Items))
	for i, item := range inv.Items {
		mergedItems[i] = InvoiceItemInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		}
	}

	if err := validateInvoiceFields(inv.ClientName, mergedItems, inv.TaxRate, inv.DueDate, inv.Status); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	CalculateTotals(inv)
	ApplyStatusPolicy(inv, now)

	if inv.Status == entity.InvoiceStatusPaid && inv.PaymentDate == nil {
		inv.PaymentDate = &now
	}

	inv.UpdatedAt = now

	if err := uc.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, fmt.Errorf("failed to update invoice: %w", err)
	}

	return &UpdateInvoiceOutput{Invoice: ToInvoiceOutput(inv)}, nil
}
