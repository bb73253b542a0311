// Package adapter defines the interfaces between the application layer and
// its external collaborators (persistence, email delivery).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// TransactionFilter represents filter criteria for transaction queries.
type TransactionFilter struct {
	Type      *entity.TransactionType
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, newest date first.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// GetSummary returns the total amount and count for one transaction type
	// within a period.
	GetSummary(ctx context.Context, transactionType entity.TransactionType, start, end time.Time) (*entity.TransactionSummary, error)

	// GetCategoryBreakdown returns per-category totals for one transaction type
	// within a period, largest total first.
	GetCategoryBreakdown(ctx context.Context, transactionType entity.TransactionType, start, end time.Time) ([]entity.CategoryTotal, error)
}
