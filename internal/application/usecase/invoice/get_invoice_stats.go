package invoice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// GetInvoiceStatsOutput represents the invoice statistics overview.
type GetInvoiceStatsOutput struct {
	TotalInvoices  int64
	PaidInvoices   int64
	PendingAmount  decimal.Decimal
	OverdueAmount  decimal.Decimal
	PaidAmount     decimal.Decimal
	TotalAmount    decimal.Decimal
	AmountByStatus []entity.InvoiceAmountByStatus
}

// GetInvoiceStatsUseCase handles the invoice statistics overview.
type GetInvoiceStatsUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewGetInvoiceStatsUseCase creates a new GetInvoiceStatsUseCase instance.
func NewGetInvoiceStatsUseCase(invoiceRepo adapter.InvoiceRepository) *GetInvoiceStatsUseCase {
	return &GetInvoiceStatsUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute aggregates invoice counts and amounts grouped by status.
func (uc *GetInvoiceStatsUseCase) Execute(ctx context.Context) (*GetInvoiceStatsOutput, error) {
	counts, err := uc.invoiceRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices by status: %w", err)
	}

	amounts, err := uc.invoiceRepo.GetAmountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice amounts by status: %w", err)
	}

	total, err := uc.invoiceRepo.GetTotalAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get total invoice amount: %w", err)
	}

	output := &GetInvoiceStatsOutput{
		TotalInvoices:  counts.Total,
		PaidInvoices:   counts.Paid,
		PendingAmount:  decimal.Zero,
		OverdueAmount:  decimal.Zero,
		PaidAmount:     decimal.Zero,
		TotalAmount:    total,
		AmountByStatus: amounts,
	}

	for _, row := range amounts {
		switch row.Status {
		case entity.InvoiceStatusPending:
			output.PendingAmount = row.Total
		case entity.InvoiceStatusOverdue:
			output.OverdueAmount = row.Total
		case entity.InvoiceStatusPaid:
			output.PaidAmount = row.Total
		}
	}

	return output, nil
}
