package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/application/usecase/invoice"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// GetInvoiceReportInput represents the input for the invoice report. The
// period filters on the issue date.
type GetInvoiceReportInput struct {
	StartDate time.Time
	EndDate   time.Time
	Status    *entity.InvoiceStatus
}

// GetInvoiceReportOutput represents the invoice report payload.
type GetInvoiceReportOutput struct {
	Period        ReportPeriod
	TotalInvoices int64
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	PendingAmount decimal.Decimal
	OverdueAmount decimal.Decimal
	CountByStatus entity.InvoiceStatusCounts
	Invoices      []*invoice.InvoiceOutput
}

// GetInvoiceReportUseCase builds the invoice report from the raw invoice
// rows of the period.
type GetInvoiceReportUseCase struct {
	invoiceRepo adapter.InvoiceRepository
}

// NewGetInvoiceReportUseCase creates a new GetInvoiceReportUseCase instance.
func NewGetInvoiceReportUseCase(invoiceRepo adapter.InvoiceRepository) *GetInvoiceReportUseCase {
	return &GetInvoiceReportUseCase{
		invoiceRepo: invoiceRepo,
	}
}

// Execute fetches the period's invoices once and derives counts and amounts
// grouped by status from them.
func (uc *GetInvoiceReportUseCase) Execute(ctx context.Context, input GetInvoiceReportInput) (*GetInvoiceReportOutput, error) {
	period, err := resolvePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	invoices, err := uc.invoiceRepo.FindByFilter(ctx, adapter.InvoiceFilter{
		Status:    input.Status,
		StartDate: &period.StartDate,
		EndDate:   &period.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report invoices: %w", err)
	}

	output := &GetInvoiceReportOutput{
		Period:        period,
		TotalAmount:   decimal.Zero,
		PaidAmount:    decimal.Zero,
		PendingAmount: decimal.Zero,
		OverdueAmount: decimal.Zero,
		Invoices:      make([]*invoice.InvoiceOutput, len(invoices)),
	}

	for i, inv := range invoices {
		output.Invoices[i] = invoice.ToInvoiceOutput(inv)
		output.TotalInvoices++
		output.TotalAmount = output.TotalAmount.Add(inv.Total)
		output.CountByStatus.Total++

		switch inv.Status {
		case entity.InvoiceStatusPaid:
			output.PaidAmount = output.PaidAmount.Add(inv.Total)
			output.CountByStatus.Paid++
		case entity.InvoiceStatusPending:
			output.PendingAmount = output.PendingAmount.Add(inv.Total)
			output.CountByStatus.Pending++
		case entity.InvoiceStatusOverdue:
			output.OverdueAmount = output.OverdueAmount.Add(inv.Total)
			output.CountByStatus.Overdue++
		}
	}

	return output, nil
}
