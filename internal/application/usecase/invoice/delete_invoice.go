package invoice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/application/adapter"
)

// DeleteInvoiceUseCase handles invoice deletion logic.
type DeleteInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewDeleteInvoiceUseCase creates a new DeleteInvoiceUseCase instance.
func NewDeleteInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *DeleteInvoiceUseCase {
	return &DeleteInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute removes an invoice and its line items. Transactions that reference
// the invoice keep their weak reference; they are never cascaded.
func (uc *DeleteInvoiceUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if _, err := uc.invoiceRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := uc.invoiceRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete invoice: %w", err)
	}

	return nil
}
