// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (income or expense).
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// RelatedModel identifies which entity a transaction weakly references.
type RelatedModel string

const (
	RelatedModelInvoice  RelatedModel = "Invoice"
	RelatedModelCampaign RelatedModel = "Campaign"
)

// IncomeCategoryInvoice is the category assigned to transactions created
// automatically when an invoice is marked paid. Categories are conventions,
// not constraints: the field stays a free-form string at this layer.
const IncomeCategoryInvoice = "invoice"

// Transaction represents a single monetary event, either income or expense.
type Transaction struct {
	ID           uuid.UUID
	Type         TransactionType
	Category     string
	Amount       decimal.Decimal // Always positive; Type carries the sign semantics
	Date         time.Time
	Description  string
	Notes        string
	RelatedTo    *uuid.UUID // Weak reference, lookup only, never cascaded
	RelatedModel RelatedModel
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewTransaction creates a new Transaction entity. A zero date defaults to
// the creation time.
func NewTransaction(
	transactionType TransactionType,
	category string,
	amount decimal.Decimal,
	date time.Time,
	description string,
	notes string,
	relatedTo *uuid.UUID,
	relatedModel RelatedModel,
) *Transaction {
	now := time.Now().UTC()

	if date.IsZero() {
		date = now
	}

	return &Transaction{
		ID:           uuid.New(),
		Type:         transactionType,
		Category:     category,
		Amount:       amount,
		Date:         date,
		Description:  description,
		Notes:        notes,
		RelatedTo:    relatedTo,
		RelatedModel: relatedModel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TransactionSummary represents aggregated totals for a set of transactions.
type TransactionSummary struct {
	Total decimal.Decimal
	Count int64
}

// CategoryTotal represents one category's share of a transaction summary.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
	Count    int64
}
