package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// trendMonths is the span of the dashboard's monthly trend series.
const trendMonths = 6

var hundred = decimal.NewFromInt(100)

// GetFinancialSummaryInput represents the period for the financial summary.
// Zero dates default to the start of the current year and now.
type GetFinancialSummaryInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// GetFinancialSummaryOutput represents the financial dashboard payload.
type GetFinancialSummaryOutput struct {
	StartDate         time.Time
	EndDate           time.Time
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	Profit            decimal.Decimal
	ProfitMargin      decimal.Decimal
	ExpenseByCategory []entity.CategoryTotal
	MonthlyTrend      []MonthlyTrend
	OutstandingAmount decimal.Decimal
}

// GetFinancialSummaryUseCase assembles the financial dashboard.
type GetFinancialSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	invoiceRepo     adapter.InvoiceRepository
	dashboardRepo   DashboardRepository
}

// NewGetFinancialSummaryUseCase creates a new GetFinancialSummaryUseCase instance.
func NewGetFinancialSummaryUseCase(
	transactionRepo adapter.TransactionRepository,
	invoiceRepo adapter.InvoiceRepository,
	dashboardRepo DashboardRepository,
) *GetFinancialSummaryUseCase {
	return &GetFinancialSummaryUseCase{
		transactionRepo: transactionRepo,
		invoiceRepo:     invoiceRepo,
		dashboardRepo:   dashboardRepo,
	}
}

// Execute aggregates income, expenses, profit, category breakdown, the
// six-month trend and the outstanding invoice amount.
func (uc *GetFinancialSummaryUseCase) Execute(ctx context.Context, input GetFinancialSummaryInput) (*GetFinancialSummaryOutput, error) {
	start, end := periodOrDefault(input.StartDate, input.EndDate)

	income, err := uc.transactionRepo.GetSummary(ctx, entity.TransactionTypeIncome, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get income summary: %w", err)
	}

	expenses, err := uc.transactionRepo.GetSummary(ctx, entity.TransactionTypeExpense, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense summary: %w", err)
	}

	expenseByCategory, err := uc.transactionRepo.GetCategoryBreakdown(ctx, entity.TransactionTypeExpense, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense breakdown: %w", err)
	}

	trend, err := uc.dashboardRepo.GetMonthlyTrend(ctx, trendMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly trend: %w", err)
	}

	outstanding, err := uc.invoiceRepo.GetOutstandingAmount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get outstanding invoice amount: %w", err)
	}

	profit := income.Total.Sub(expenses.Total)

	return &GetFinancialSummaryOutput{
		StartDate:         start,
		EndDate:           end,
		TotalIncome:       income.Total,
		TotalExpenses:     expenses.Total,
		Profit:            profit,
		ProfitMargin:      ProfitMargin(profit, income.Total),
		ExpenseByCategory: expenseByCategory,
		MonthlyTrend:      trend,
		OutstandingAmount: outstanding,
	}, nil
}

// ProfitMargin returns profit as a percentage of income, rounded to two
// decimal places. Zero income yields zero rather than a division error.
func ProfitMargin(profit, income decimal.Decimal) decimal.Decimal {
	if income.IsZero() {
		return decimal.Zero
	}
	return profit.Div(income).Mul(hundred).Round(2)
}

// periodOrDefault fills missing period bounds: start defaults to January 1
// of the current year, end defaults to now.
func periodOrDefault(start, end time.Time) (time.Time, time.Time) {
	now := time.Now().UTC()
	if start.IsZero() {
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() {
		end = now
	}
	return start, end
}
