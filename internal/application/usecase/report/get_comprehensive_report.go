package report

import (
	"context"
	"time"
)

// GetComprehensiveReportInput represents the shared period for the combined report.
type GetComprehensiveReportInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GetComprehensiveReportOutput bundles the three section reports over one period.
type GetComprehensiveReportOutput struct {
	Period    ReportPeriod
	Financial *GetFinancialReportOutput
	Marketing *GetMarketingReportOutput
	Invoices  *GetInvoiceReportOutput
}

// GetComprehensiveReportUseCase composes the financial, marketing and
// invoice reports into one payload.
type GetComprehensiveReportUseCase struct {
	financial *GetFinancialReportUseCase
	marketing *GetMarketingReportUseCase
	invoices  *GetInvoiceReportUseCase
}

// NewGetComprehensiveReportUseCase creates a new GetComprehensiveReportUseCase instance.
func NewGetComprehensiveReportUseCase(
	financial *GetFinancialReportUseCase,
	marketing *GetMarketingReportUseCase,
	invoices *GetInvoiceReportUseCase,
) *GetComprehensiveReportUseCase {
	return &GetComprehensiveReportUseCase{
		financial: financial,
		marketing: marketing,
		invoices:  invoices,
	}
}

// Execute runs the three section reports over the same period.
func (uc *GetComprehensiveReportUseCase) Execute(ctx context.Context, input GetComprehensiveReportInput) (*GetComprehensiveReportOutput, error) {
	period, err := resolvePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	financial, err := uc.financial.Execute(ctx, GetFinancialReportInput{
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
	})
	if err != nil {
		return nil, err
	}

	marketing, err := uc.marketing.Execute(ctx, GetMarketingReportInput{
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
	})
	if err != nil {
		return nil, err
	}

	invoices, err := uc.invoices.Execute(ctx, GetInvoiceReportInput{
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
	})
	if err != nil {
		return nil, err
	}

	return &GetComprehensiveReportOutput{
		Period:    period,
		Financial: financial,
		Marketing: marketing,
		Invoices:  invoices,
	}, nil
}
