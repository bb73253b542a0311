// Package transaction contains transaction-related use cases.
package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// TransactionOutput represents transaction data in use case output.
type TransactionOutput struct {
	ID           uuid.UUID
	Type         entity.TransactionType
	Category     string
	Amount       decimal.Decimal
	Date         time.Time
	Description  string
	Notes        string
	RelatedTo    *uuid.UUID
	RelatedModel entity.RelatedModel
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func toTransactionOutput(transaction *entity.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:           transaction.ID,
		Type:         transaction.Type,
		Category:     transaction.Category,
		Amount:       transaction.Amount,
		Date:         transaction.Date,
		Description:  transaction.Description,
		Notes:        transaction.Notes,
		RelatedTo:    transaction.RelatedTo,
		RelatedModel: transaction.RelatedModel,
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}
