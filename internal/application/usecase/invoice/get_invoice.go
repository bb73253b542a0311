package invoice

import (
	"context"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/application/adapter"
)

// GetInvoiceOutput represents the output of a single invoice lookup.
type GetInvoiceOutput struct {
	Invoice *InvoiceOutput
}

// GetInvoiceUseCase handles single invoice retrieval.
type GetInvoiceUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewGetInvoiceUseCase creates a new GetInvoiceUseCase instance.
func NewGetInvoiceUseCase(invoiceRepo adapter.InvoiceRepository) *GetInvoiceUseCase {
	return &GetInvoiceUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute retrieves an invoice by ID.
func (uc *GetInvoiceUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetInvoiceOutput, error) {
	inv, err := uc.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GetInvoiceOutput{Invoice: ToInvoiceOutput(inv)}, nil
}
