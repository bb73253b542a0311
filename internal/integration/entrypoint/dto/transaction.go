package dto

import (
	"time"

	"github.com/biz-manager/backend/internal/application/usecase/transaction"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Type         string  `json:"type" binding:"required,oneof=income expense"`
	Category     string  `json:"category" binding:"required"`
	Amount       float64 `json:"amount" binding:"required"`
	Date         string  `json:"date,omitempty"`
	Description  string  `json:"description" binding:"required,min=1,max=200"`
	Notes        string  `json:"notes,omitempty" binding:"omitempty,max=250"`
	RelatedTo    *string `json:"relatedTo,omitempty"`
	RelatedModel string  `json:"relatedModel,omitempty" binding:"omitempty,oneof=Invoice Campaign"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Type         *string  `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Category     *string  `json:"category,omitempty"`
	Amount       *float64 `json:"amount,omitempty"`
	Date         *string  `json:"date,omitempty"`
	Description  *string  `json:"description,omitempty" binding:"omitempty,min=1,max=200"`
	Notes        *string  `json:"notes,omitempty" binding:"omitempty,max=250"`
	RelatedTo    *string  `json:"relatedTo,omitempty"`
	RelatedModel *string  `json:"relatedModel,omitempty" binding:"omitempty,oneof=Invoice Campaign"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Category     string    `json:"category"`
	Amount       string    `json:"amount"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description"`
	Notes        string    `json:"notes,omitempty"`
	RelatedTo    *string   `json:"relatedTo,omitempty"`
	RelatedModel string    `json:"relatedModel,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// TransactionListResponse represents the transaction list payload.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// TransactionSummaryResponse represents the income or expense summary payload.
type TransactionSummaryResponse struct {
	Type       string                  `json:"type"`
	StartDate  string                  `json:"startDate"`
	EndDate    string                  `json:"endDate"`
	Total      string                  `json:"total"`
	Count      int64                   `json:"count"`
	ByCategory []CategoryTotalResponse `json:"byCategory"`
}

// CategoryTotalResponse represents one category's share of a summary.
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int64  `json:"count"`
}

// ToTransactionResponse converts a use case transaction output to its response DTO.
func ToTransactionResponse(t *transaction.TransactionOutput) TransactionResponse {
	var relatedTo *string
	if t.RelatedTo != nil {
		id := t.RelatedTo.String()
		relatedTo = &id
	}

	return TransactionResponse{
		ID:           t.ID.String(),
		Type:         string(t.Type),
		Category:     t.Category,
		Amount:       t.Amount.String(),
		Date:         t.Date,
		Description:  t.Description,
		Notes:        t.Notes,
		RelatedTo:    relatedTo,
		RelatedModel: string(t.RelatedModel),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// ToTransactionListResponse converts a list output to its response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{
		Transactions: transactions,
		Count:        output.Count,
	}
}

// ToTransactionSummaryResponse converts a summary output to its response DTO.
func ToTransactionSummaryResponse(output *transaction.GetTransactionSummaryOutput) TransactionSummaryResponse {
	return TransactionSummaryResponse{
		Type:       string(output.Type),
		StartDate:  output.StartDate.Format(DateFormat),
		EndDate:    output.EndDate.Format(DateFormat),
		Total:      output.Total.String(),
		Count:      output.Count,
		ByCategory: ToCategoryTotalResponses(output.ByCategory),
	}
}

// ToCategoryTotalResponses converts category totals to their response DTOs.
func ToCategoryTotalResponses(totals []entity.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(totals))
	for i, total := range totals {
		responses[i] = CategoryTotalResponse{
			Category: total.Category,
			Total:    total.Total.String(),
			Count:    total.Count,
		}
	}
	return responses
}
