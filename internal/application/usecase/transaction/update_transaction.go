package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction updates. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	ID           uuid.UUID
	Type         *entity.TransactionType
	Category     *string
	Amount       *decimal.Decimal
	Date         *time.Time
	Description  *string
	Notes        *string
	RelatedTo    *uuid.UUID
	RelatedModel *entity.RelatedModel
}

// UpdateTransactionOutput represents the output of transaction updates.
type UpdateTransactionOutput struct {
	Transaction *TransactionOutput
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute merges the provided fields into the stored transaction and
// re-validates the merged state before persisting.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		transaction.Type = *input.Type
	}
	if input.Category != nil {
		transaction.Category = *input.Category
	}
	if input.Amount != nil {
		transaction.Amount = *input.Amount
	}
	if input.Date != nil {
		transaction.Date = *input.Date
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}
	if input.Notes != nil {
		transaction.Notes = *input.Notes
	}
	if input.RelatedTo != nil {
		transaction.RelatedTo = input.RelatedTo
	}
	if input.RelatedModel != nil {
		transaction.RelatedModel = *input.RelatedModel
	}

	if err := validateTransactionFields(
		transaction.Type,
		transaction.Category,
		transaction.Amount,
		transaction.Description,
		transaction.Notes,
		transaction.RelatedTo,
		transaction.RelatedModel,
	); err != nil {
		return nil, err
	}

	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}
