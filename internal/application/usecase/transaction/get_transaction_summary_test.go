package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

func seedTransaction(repo *fakeTransactionRepository, transactionType entity.TransactionType, category string, amount int64, date time.Time) {
	transaction := entity.NewTransaction(
		transactionType,
		category,
		decimal.NewFromInt(amount),
		date,
		category+" payment",
		"",
		nil,
		"",
	)
	repo.transactions[transaction.ID] = transaction
}

func TestGetTransactionSummaryUseCase_Execute(t *testing.T) {
	t.Run("sums one type within the period", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		june := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
		seedTransaction(repo, entity.TransactionTypeExpense, "advertising", 1200, june)
		seedTransaction(repo, entity.TransactionTypeExpense, "software", 300, june.AddDate(0, 0, 5))
		seedTransaction(repo, entity.TransactionTypeIncome, "invoice", 5000, june)
		seedTransaction(repo, entity.TransactionTypeExpense, "advertising", 999, june.AddDate(-1, 0, 0))

		uc := NewGetTransactionSummaryUseCase(repo)

		output, err := uc.Execute(context.Background(), GetTransactionSummaryInput{
			Type:      entity.TransactionTypeExpense,
			StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if want := decimal.NewFromInt(1500); !output.Total.Equal(want) {
			t.Errorf("expected total %s, got %s", want, output.Total)
		}
		if output.Count != 2 {
			t.Errorf("expected count 2, got %d", output.Count)
		}
		if len(output.ByCategory) != 2 {
			t.Errorf("expected 2 categories, got %d", len(output.ByCategory))
		}
	})

	t.Run("defaults period to current year start through now", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewGetTransactionSummaryUseCase(repo)

		output, err := uc.Execute(context.Background(), GetTransactionSummaryInput{
			Type: entity.TransactionTypeIncome,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		now := time.Now().UTC()
		wantStart := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		if !output.StartDate.Equal(wantStart) {
			t.Errorf("expected start %s, got %s", wantStart, output.StartDate)
		}
		if output.EndDate.Before(wantStart) || output.EndDate.After(now.Add(time.Minute)) {
			t.Errorf("expected end near now, got %s", output.EndDate)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		uc := NewGetTransactionSummaryUseCase(newFakeTransactionRepository())

		_, err := uc.Execute(context.Background(), GetTransactionSummaryInput{Type: "transfer"})
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})
}
