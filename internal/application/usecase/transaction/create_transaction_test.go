package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// fakeTransactionRepository is an in-memory TransactionRepository for use case tests.
type fakeTransactionRepository struct {
	transactions map[uuid.UUID]*entity.Transaction
	createErr    error
}

func newFakeTransactionRepository() *fakeTransactionRepository {
	return &fakeTransactionRepository{transactions: make(map[uuid.UUID]*entity.Transaction)}
}

func (r *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transaction, nil
}

func (r *fakeTransactionRepository) FindByFilter(_ context.Context, _ adapter.TransactionFilter) ([]*entity.Transaction, error) {
	result := make([]*entity.Transaction, 0, len(r.transactions))
	for _, transaction := range r.transactions {
		result = append(result, transaction)
	}
	return result, nil
}

func (r *fakeTransactionRepository) Update(_ context.Context, transaction *entity.Transaction) error {
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepository) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepository) GetSummary(_ context.Context, transactionType entity.TransactionType, start, end time.Time) (*entity.TransactionSummary, error) {
	summary := &entity.TransactionSummary{Total: decimal.Zero}
	for _, transaction := range r.transactions {
		if transaction.Type != transactionType || transaction.Date.Before(start) || transaction.Date.After(end) {
			continue
		}
		summary.Total = summary.Total.Add(transaction.Amount)
		summary.Count++
	}
	return summary, nil
}

func (r *fakeTransactionRepository) GetCategoryBreakdown(_ context.Context, transactionType entity.TransactionType, start, end time.Time) ([]entity.CategoryTotal, error) {
	byCategory := map[string]*entity.CategoryTotal{}
	for _, transaction := range r.transactions {
		if transaction.Type != transactionType || transaction.Date.Before(start) || transaction.Date.After(end) {
			continue
		}
		row, ok := byCategory[transaction.Category]
		if !ok {
			row = &entity.CategoryTotal{Category: transaction.Category, Total: decimal.Zero}
			byCategory[transaction.Category] = row
		}
		row.Total = row.Total.Add(transaction.Amount)
		row.Count++
	}
	result := make([]entity.CategoryTotal, 0, len(byCategory))
	for _, row := range byCategory {
		result = append(result, *row)
	}
	return result, nil
}

func validCreateTransactionInput() CreateTransactionInput {
	return CreateTransactionInput{
		Type:        entity.TransactionTypeExpense,
		Category:    "advertising",
		Amount:      decimal.NewFromInt(1200),
		Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		Description: "Facebook ads June",
	}
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	t.Run("creates transaction", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), validCreateTransactionInput())
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Transaction.Type != entity.TransactionTypeExpense {
			t.Errorf("expected type expense, got %s", output.Transaction.Type)
		}
		if len(repo.transactions) != 1 {
			t.Errorf("expected 1 persisted transaction, got %d", len(repo.transactions))
		}
	})

	t.Run("defaults zero date to now", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		input := validCreateTransactionInput()
		input.Date = time.Time{}

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Transaction.Date.IsZero() {
			t.Error("expected date to default to now")
		}
	})

	t.Run("length limits count characters not bytes", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		uc := NewCreateTransactionUseCase(repo)

		input := validCreateTransactionInput()
		input.Description = strings.Repeat("ä", MaxDescriptionLength)
		input.Notes = strings.Repeat("ä", MaxNotesLength)

		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		input.Description = strings.Repeat("ä", MaxDescriptionLength+1)
		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidTransactionDescription) {
			t.Errorf("expected ErrInvalidTransactionDescription, got %v", err)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		relatedID := uuid.New()

		tests := []struct {
			name    string
			mutate  func(*CreateTransactionInput)
			wantErr error
		}{
			{
				name:    "unknown type",
				mutate:  func(in *CreateTransactionInput) { in.Type = "transfer" },
				wantErr: domainerror.ErrInvalidTransactionType,
			},
			{
				name:    "missing category",
				mutate:  func(in *CreateTransactionInput) { in.Category = "" },
				wantErr: domainerror.ErrMissingTransactionCategory,
			},
			{
				name:    "zero amount",
				mutate:  func(in *CreateTransactionInput) { in.Amount = decimal.Zero },
				wantErr: domainerror.ErrInvalidTransactionAmount,
			},
			{
				name:    "negative amount",
				mutate:  func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-5) },
				wantErr: domainerror.ErrInvalidTransactionAmount,
			},
			{
				name:    "empty description",
				mutate:  func(in *CreateTransactionInput) { in.Description = "" },
				wantErr: domainerror.ErrInvalidTransactionDescription,
			},
			{
				name: "description too long",
				mutate: func(in *CreateTransactionInput) {
					in.Description = strings.Repeat("x", MaxDescriptionLength+1)
				},
				wantErr: domainerror.ErrInvalidTransactionDescription,
			},
			{
				name: "notes too long",
				mutate: func(in *CreateTransactionInput) {
					in.Notes = strings.Repeat("x", MaxNotesLength+1)
				},
				wantErr: domainerror.ErrTransactionNotesTooLong,
			},
			{
				name: "related reference without valid model",
				mutate: func(in *CreateTransactionInput) {
					in.RelatedTo = &relatedID
					in.RelatedModel = "Client"
				},
				wantErr: domainerror.ErrInvalidRelatedModel,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := newFakeTransactionRepository()
				uc := NewCreateTransactionUseCase(repo)

				input := validCreateTransactionInput()
				tt.mutate(&input)

				_, err := uc.Execute(context.Background(), input)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
			})
		}
	})

	t.Run("propagates repository failure", func(t *testing.T) {
		repo := newFakeTransactionRepository()
		repo.createErr = errors.New("connection refused")
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), validCreateTransactionInput())
		if err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
