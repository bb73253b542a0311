package transaction

import (
	"context"
	"fmt"

	"github.com/biz-manager/backend/internal/application/adapter"
)

// ListTransactionsInput represents filter criteria for listing transactions.
type ListTransactionsInput struct {
	Filter adapter.TransactionFilter
}

// ListTransactionsOutput represents the output of transaction listing.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Count        int
}

// ListTransactionsUseCase handles transaction listing logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves transactions matching the filter, newest date first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByFilter(ctx, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	outputs := make([]*TransactionOutput, len(transactions))
	for i, transaction := range transactions {
		outputs[i] = toTransactionOutput(transaction)
	}

	return &ListTransactionsOutput{
		Transactions: outputs,
		Count:        len(outputs),
	}, nil
}
