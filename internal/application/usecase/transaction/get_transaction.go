package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/biz-manager/backend/internal/application/adapter"
)

// GetTransactionOutput represents the output of a single transaction lookup.
type GetTransactionOutput struct {
	Transaction *TransactionOutput
}

// GetTransactionUseCase handles single transaction retrieval.
type GetTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepo adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves a transaction by ID.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &GetTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}
