// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
	"github.com/biz-manager/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	return r.db.WithContext(ctx).Create(transactionModel).Error
}

// FindByID retrieves a transaction by its ID.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByFilter retrieves transactions based on filter criteria, newest date first.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{})

	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}

	var transactionModels []model.TransactionModel
	result := query.Order("date DESC, created_at DESC").Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction from the database.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// GetSummary returns the total amount and count for one transaction type
// within a period.
func (r *transactionRepository) GetSummary(ctx context.Context, transactionType entity.TransactionType, start, end time.Time) (*entity.TransactionSummary, error) {
	var row struct {
		Total decimal.Decimal
		Count int64
	}

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("type = ? AND date >= ? AND date <= ?", string(transactionType), start, end).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entity.TransactionSummary{Total: row.Total, Count: row.Count}, nil
}

// GetCategoryBreakdown returns per-category totals for one transaction type
// within a period, largest total first.
func (r *transactionRepository) GetCategoryBreakdown(ctx context.Context, transactionType entity.TransactionType, start, end time.Time) ([]entity.CategoryTotal, error) {
	var rows []struct {
		Category string
		Total    decimal.Decimal
		Count    int64
	}

	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Where("type = ? AND date >= ? AND date <= ?", string(transactionType), start, end).
		Group("category").
		Order("total DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	breakdown := make([]entity.CategoryTotal, len(rows))
	for i, row := range rows {
		breakdown[i] = entity.CategoryTotal{
			Category: row.Category,
			Total:    row.Total,
			Count:    row.Count,
		}
	}
	return breakdown, nil
}
