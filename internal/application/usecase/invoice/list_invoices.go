package invoice

import (
	"context"
	"fmt"

	"github.com/biz-manager/backend/internal/application/adapter"
)

// ListInvoicesInput represents filter criteria for listing invoices.
type ListInvoicesInput struct {
	Filter adapter.InvoiceFilter
}

// ListInvoicesOutput represents the output of invoice listing.
type ListInvoicesOutput struct {
	Invoices []*InvoiceOutput
	Count    int
}

// ListInvoicesUseCase handles invoice listing logic.
type ListInvoicesUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewListInvoicesUseCase creates a new ListInvoicesUseCase instance.
func NewListInvoicesUseCase(invoiceRepo adapter.InvoiceRepository) *ListInvoicesUseCase {
	return &ListInvoicesUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute retrieves invoices matching the filter, newest first.
func (uc *ListInvoicesUseCase) Execute(ctx context.Context, input ListInvoicesInput) (*ListInvoicesOutput, error) {
	invoices, err := uc.invoiceRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}

	outputs := make([]*InvoiceOutput, len(invoices))
	for i, inv := range invoices {
		outputs[i] = ToInvoiceOutput(inv)
	}

	return &ListInvoicesOutput{
		Invoices: outputs,
		Count:    len(outputs),
	}, nil
}
