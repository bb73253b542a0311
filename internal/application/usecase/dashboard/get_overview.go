package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// GetOverviewOutput represents the combined business overview payload.
type GetOverviewOutput struct {
	MonthIncome     decimal.Decimal
	MonthExpenses   decimal.Decimal
	MonthProfit     decimal.Decimal
	ActiveCampaigns int64
	PendingInvoices int64
	OverdueInvoices int64
}

// GetOverviewUseCase assembles the combined business overview: the current
// calendar month's money flow plus campaign and invoice counts.
type GetOverviewUseCase struct {
	transactionRepo adapter.TransactionRepository
	campaignRepo    adapter.CampaignRepository
	invoiceRepo     adapter.InvoiceRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	transactionRepo adapter.TransactionRepository,
	campaignRepo adapter.CampaignRepository,
	invoiceRepo adapter.InvoiceRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		transactionRepo: transactionRepo,
		campaignRepo:    campaignRepo,
		invoiceRepo:     invoiceRepo,
	}
}

// Execute aggregates the overview for the current calendar month.
func (uc *GetOverviewUseCase) Execute(ctx context.Context) (*GetOverviewOutput, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	income, err := uc.transactionRepo.GetSummary(ctx, entity.TransactionTypeIncome, monthStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get month income: %w", err)
	}

	expenses, err := uc.transactionRepo.GetSummary(ctx, entity.TransactionTypeExpense, monthStart, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get month expenses: %w", err)
	}

	active := entity.CampaignStatusActive
	activeCampaigns, err := uc.campaignRepo.Count(ctx, &active)
	if err != nil {
		return nil, fmt.Errorf("failed to count active campaigns: %w", err)
	}

	invoiceCounts, err := uc.invoiceRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices by status: %w", err)
	}

	return &GetOverviewOutput{
		MonthIncome:     income.Total,
		MonthExpenses:   expenses.Total,
		MonthProfit:     income.Total.Sub(expenses.Total),
		ActiveCampaigns: activeCampaigns,
		PendingInvoices: invoiceCounts.Pending,
		OverdueInvoices: invoiceCounts.Overdue,
	}, nil
}
