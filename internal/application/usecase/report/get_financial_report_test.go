package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// fakeTransactionRepository serves canned rows for report tests.
type fakeTransactionRepository struct {
	rows []*entity.Transaction
}

func (r *fakeTransactionRepository) Create(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, _ uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepository) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	result := make([]*entity.Transaction, 0, len(r.rows))
	for _, row := range r.rows {
		if filter.Type != nil && row.Type != *filter.Type {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, _ *entity.Transaction) error {
	return nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

func (r *fakeTransactionRepository) GetSummary(_ context.Context, _ entity.TransactionType, _, _ time.Time) (*entity.TransactionSummary, error) {
	return &entity.TransactionSummary{Total: decimal.Zero}, nil
}

func (r *fakeTransactionRepository) GetCategoryBreakdown(_ context.Context, _ entity.TransactionType, _, _ time.Time) ([]entity.CategoryTotal, error) {
	return nil, nil
}

func reportRow(transactionType entity.TransactionType, category string, amount int64) *entity.Transaction {
	return entity.NewTransaction(
		transactionType,
		category,
		decimal.NewFromInt(amount),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		category+" entry",
		"",
		nil,
		"",
	)
}

func TestGetFinancialReportUseCase_Execute(t *testing.T) {
	t.Run("derives totals and category breakdown from rows", func(t *testing.T) {
		repo := &fakeTransactionRepository{rows: []*entity.Transaction{
			reportRow(entity.TransactionTypeIncome, "invoice", 10000),
			reportRow(entity.TransactionTypeExpense, "advertising", 3000),
			reportRow(entity.TransactionTypeExpense, "advertising", 1000),
			reportRow(entity.TransactionTypeExpense, "software", 500),
		}}
		uc := NewGetFinancialReportUseCase(repo)

		output, err := uc.Execute(context.Background(), GetFinancialReportInput{
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if want := decimal.NewFromInt(10000); !output.TotalIncome.Equal(want) {
			t.Errorf("expected income %s, got %s", want, output.TotalIncome)
		}
		if want := decimal.NewFromInt(4500); !output.TotalExpenses.Equal(want) {
			t.Errorf("expected expenses %s, got %s", want, output.TotalExpenses)
		}
		if want := decimal.NewFromInt(5500); !output.NetProfit.Equal(want) {
			t.Errorf("expected net profit %s, got %s", want, output.NetProfit)
		}

		if len(output.ByCategory) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(output.ByCategory))
		}
		// Largest total first.
		if output.ByCategory[0].Category != "invoice" {
			t.Errorf("expected invoice first, got %s", output.ByCategory[0].Category)
		}
		if output.ByCategory[1].Category != "advertising" || output.ByCategory[1].Count != 2 {
			t.Errorf("expected advertising with count 2, got %+v", output.ByCategory[1])
		}
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		uc := NewGetFinancialReportUseCase(&fakeTransactionRepository{})

		_, err := uc.Execute(context.Background(), GetFinancialReportInput{
			StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		if !errors.Is(err, domainerror.ErrInvalidReportDateRange) {
			t.Errorf("expected ErrInvalidReportDateRange, got %v", err)
		}
	})

	t.Run("rejects unknown type filter", func(t *testing.T) {
		uc := NewGetFinancialReportUseCase(&fakeTransactionRepository{})

		badType := entity.TransactionType("transfer")
		_, err := uc.Execute(context.Background(), GetFinancialReportInput{Type: &badType})
		if !errors.Is(err, domainerror.ErrInvalidReportType) {
			t.Errorf("expected ErrInvalidReportType, got %v", err)
		}
	})
}
