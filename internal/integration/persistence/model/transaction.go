// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type         string          `gorm:"type:varchar(10);not null;index"`
	Category     string          `gorm:"type:varchar(100);not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date         time.Time       `gorm:"type:timestamptz;not null;index"`
	Description  string          `gorm:"type:varchar(200);not null"`
	Notes        string          `gorm:"type:varchar(250)"`
	RelatedTo    *uuid.UUID      `gorm:"type:uuid;index"`
	RelatedModel string          `gorm:"type:varchar(20)"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		Type:         entity.TransactionType(m.Type),
		Category:     m.Category,
		Amount:       m.Amount,
		Date:         m.Date,
		Description:  m.Description,
		Notes:        m.Notes,
		RelatedTo:    m.RelatedTo,
		RelatedModel: entity.RelatedModel(m.RelatedModel),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           transaction.ID,
		Type:         string(transaction.Type),
		Category:     transaction.Category,
		Amount:       transaction.Amount,
		Date:         transaction.Date,
		Description:  transaction.Description,
		Notes:        transaction.Notes,
		RelatedTo:    transaction.RelatedTo,
		RelatedModel: string(transaction.RelatedModel),
		CreatedAt:    transaction.CreatedAt,
		UpdatedAt:    transaction.UpdatedAt,
	}
}
