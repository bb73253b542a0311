package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// GetFinancialReportInput represents the input for the financial report.
// Type optionally narrows the report to income or expense rows.
type GetFinancialReportInput struct {
	StartDate time.Time
	EndDate   time.Time
	Type      *entity.TransactionType
}

// GetFinancialReportOutput represents the financial report payload.
type GetFinancialReportOutput struct {
	Period        ReportPeriod
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	ByCategory    []entity.CategoryTotal
	Transactions  []*entity.Transaction
}

// GetFinancialReportUseCase builds the financial report from the raw
// transaction rows of the period.
type GetFinancialReportUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetFinancialReportUseCase creates a new GetFinancialReportUseCase instance.
func NewGetFinancialReportUseCase(transactionRepo adapter.TransactionRepository) *GetFinancialReportUseCase {
	return &GetFinancialReportUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute fetches the period's transactions once and derives totals and the
// category breakdown from them.
func (uc *GetFinancialReportUseCase) Execute(ctx context.Context, input GetFinancialReportInput) (*GetFinancialReportOutput, error) {
	period, err := resolvePeriod(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	if input.Type != nil &&
		*input.Type != entity.TransactionTypeIncome &&
		*input.Type != entity.TransactionTypeExpense {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidReportType,
		)
	}

	transactions, err := uc.transactionRepo.FindByFilter(ctx, adapter.TransactionFilter{
		Type:      input.Type,
		StartDate: &period.StartDate,
		EndDate:   &period.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch report transactions: %w", err)
	}

	output := &GetFinancialReportOutput{
		Period:        period,
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
		Transactions:  transactions,
	}

	byCategory := map[string]*entity.CategoryTotal{}
	for _, transaction := range transactions {
		switch transaction.Type {
		case entity.TransactionTypeIncome:
			output.TotalIncome = output.TotalIncome.Add(transaction.Amount)
		case entity.TransactionTypeExpense:
			output.TotalExpenses = output.TotalExpenses.Add(transaction.Amount)
		}

		row, ok := byCategory[transaction.Category]
		if !ok {
			row = &entity.CategoryTotal{Category: transaction.Category, Total: decimal.Zero}
			byCategory[transaction.Category] = row
		}
		row.Total = row.Total.Add(transaction.Amount)
		row.Count++
	}

	output.NetProfit = output.TotalIncome.Sub(output.TotalExpenses)

	output.ByCategory = make([]entity.CategoryTotal, 0, len(byCategory))
	for _, row := range byCategory {
		output.ByCategory = append(output.ByCategory, *row)
	}
	sort.Slice(output.ByCategory, func(i, j int) bool {
		return output.ByCategory[i].Total.GreaterThan(output.ByCategory[j].Total)
	})

	return output, nil
}
