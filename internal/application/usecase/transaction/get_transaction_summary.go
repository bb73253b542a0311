package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// GetTransactionSummaryInput represents the input for the per-type summary.
// Zero dates default to the start of the current year and now.
type GetTransactionSummaryInput struct {
	Type      entity.TransactionType
	StartDate time.Time
	EndDate   time.Time
}

// GetTransactionSummaryOutput represents the per-type summary output.
type GetTransactionSummaryOutput struct {
	Type       entity.TransactionType
	StartDate  time.Time
	EndDate    time.Time
	Total      decimal.Decimal
	Count      int64
	ByCategory []entity.CategoryTotal
}

// GetTransactionSummaryUseCase handles the income and expense summaries.
type GetTransactionSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionSummaryUseCase creates a new GetTransactionSummaryUseCase instance.
func NewGetTransactionSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionSummaryUseCase {
	return &GetTransactionSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute aggregates one transaction type over the period: total, count and
// per-category breakdown.
func (uc *GetTransactionSummaryUseCase) Execute(ctx context.Context, input GetTransactionSummaryInput) (*GetTransactionSummaryOutput, error) {
	if !isValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	start, end := summaryPeriod(input.StartDate, input.EndDate)

	summary, err := uc.transactionRepo.GetSummary(ctx, input.Type, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s summary: %w", input.Type, err)
	}

	byCategory, err := uc.transactionRepo.GetCategoryBreakdown(ctx, input.Type, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s category breakdown: %w", input.Type, err)
	}

	return &GetTransactionSummaryOutput{
		Type:       input.Type,
		StartDate:  start,
		EndDate:    end,
		Total:      summary.Total,
		Count:      summary.Count,
		ByCategory: byCategory,
	}, nil
}

// summaryPeriod fills missing period bounds: start defaults to January 1 of
// the current year, end defaults to now.
func summaryPeriod(start, end time.Time) (time.Time, time.Time) {
	now := time.Now().UTC()
	if start.IsZero() {
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if end.IsZero() {
		end = now
	}
	return start, end
}
