package transaction

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum transaction description length, in characters.
	MaxDescriptionLength = 200
	// MaxNotesLength is the maximum transaction notes length, in characters.
	MaxNotesLength = 250
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Type         entity.TransactionType
	Category     string
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	Notes        string
	RelatedTo    *uuid.UUID
	RelatedModel entity.RelatedModel
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *TransactionOutput
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(
		input.Type,
		input.Category,
		input.Amount,
		input.Description,
		input.Notes,
		input.RelatedTo,
		input.RelatedModel,
	); err != nil {
		return nil, err
	}

	transaction := entity.NewTransaction(
		input.Type,
		input.Category,
		input.Amount,
		input.Date,
		input.Description,
		input.Notes,
		input.RelatedTo,
		input.RelatedModel,
	)

	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: toTransactionOutput(transaction)}, nil
}

// validateTransactionFields enforces the transaction write invariants shared
// by create and update.
func validateTransactionFields(
	transactionType entity.TransactionType,
	category string,
	amount decimal.Decimal,
	description string,
	notes string,
	relatedTo *uuid.UUID,
	relatedModel entity.RelatedModel,
) error {
	if !isValidTransactionType(transactionType) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	if category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionCategory,
			"category is required",
			domainerror.ErrMissingTransactionCategory,
		)
	}

	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if description == "" || utf8.RuneCountInString(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDescription,
			fmt.Sprintf("description must be between 1 and %d characters", MaxDescriptionLength),
			domainerror.ErrInvalidTransactionDescription,
		)
	}

	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrTransactionNotesTooLong,
		)
	}

	if relatedTo != nil && !isValidRelatedModel(relatedModel) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRelatedModel,
			"related model must be 'Invoice' or 'Campaign'",
			domainerror.ErrInvalidRelatedModel,
		)
	}

	return nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeIncome || transactionType == entity.TransactionTypeExpense
}

// isValidRelatedModel validates the related model reference.
func isValidRelatedModel(relatedModel entity.RelatedModel) bool {
	return relatedModel == entity.RelatedModelInvoice || relatedModel == entity.RelatedModelCampaign
}
