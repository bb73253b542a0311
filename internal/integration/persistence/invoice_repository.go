package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
	"github.com/biz-manager/backend/internal/integration/persistence/model"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// invoiceRepository implements the adapter.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository instance.
func NewInvoiceRepository(db *gorm.DB) adapter.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// Create creates a new invoice with its line items in the database.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)
	if err := r.db.WithContext(ctx).Create(invoiceModel).Error; err != nil {
		if isDuplicateKey(err) {
			return domainerror.ErrDuplicateInvoiceNumber
		}
		return err
	}
	return nil
}

// FindByID retrieves an invoice with its line items by ID.
func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoiceModel model.InvoiceModel
	result := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&invoiceModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvoiceNotFound
		}
		return nil, result.Error
	}
	return invoiceModel.ToEntity(), nil
}

// FindByFilter retrieves invoices based on filter criteria, newest first.
func (r *invoiceRepository) FindByFilter(ctx context.Context, filter adapter.InvoiceFilter) ([]*entity.Invoice, error) {
	query := r.db.WithContext(ctx).Model(&model.InvoiceModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.StartDate != nil {
		query = query.Where("issue_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("issue_date <= ?", filter.EndDate)
	}

	var invoiceModels []model.InvoiceModel
	result := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&invoiceModels)
	if result.Error != nil {
		return nil, result.Error
	}

	invoices := make([]*entity.Invoice, len(invoiceModels))
	for i, im := range invoiceModels {
		invoices[i] = im.ToEntity()
	}
	return invoices, nil
}

// Update updates an existing invoice, replacing its line items.
func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	invoiceModel := model.InvoiceFromEntity(invoice)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Model(&model.InvoiceModel{}).
			Where("id = ?", invoice.ID).
			Select("*").
			Omit("id", "created_at", "Items").
			Updates(invoiceModel)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrInvoiceNotFound
		}

		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&model.InvoiceItemModel{}).Error; err != nil {
			return err
		}
		if len(invoiceModel.Items) > 0 {
			if err := tx.Create(&invoiceModel.Items).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes an invoice and its line items from the database.
func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&model.InvoiceItemModel{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&model.InvoiceModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrInvoiceNotFound
		}
		return nil
	})
}

// ListInvoiceNumbers returns every stored invoice number.
func (r *invoiceRepository) ListInvoiceNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Pluck("invoice_number", &numbers)
	if result.Error != nil {
		return nil, result.Error
	}
	return numbers, nil
}

// CountByStatus returns invoice counts per status.
func (r *invoiceRepository) CountByStatus(ctx context.Context) (*entity.InvoiceStatusCounts, error) {
	var rows []struct {
		Status string
		Count  int64
	}

	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	counts := &entity.InvoiceStatusCounts{}
	for _, row := range rows {
		counts.Total += row.Count
		switch entity.InvoiceStatus(row.Status) {
		case entity.InvoiceStatusPaid:
			counts.Paid = row.Count
		case entity.InvoiceStatusPending:
			counts.Pending = row.Count
		case entity.InvoiceStatusOverdue:
			counts.Overdue = row.Count
		}
	}
	return counts, nil
}

// GetAmountByStatus returns the summed invoice total grouped by status.
func (r *invoiceRepository) GetAmountByStatus(ctx context.Context) ([]entity.InvoiceAmountByStatus, error) {
	var rows []struct {
		Status string
		Total  decimal.Decimal
	}

	result := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Select("status, COALESCE(SUM(total), 0) AS total").
		Group("status").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	amounts := make([]entity.InvoiceAmountByStatus, len(rows))
	for i, row := range rows {
		amounts[i] = entity.InvoiceAmountByStatus{
			Status: entity.InvoiceStatus(row.Status),
			Total:  row.Total,
		}
	}
	return amounts, nil
}

// GetTotalAmount returns the summed total over all invoices.
func (r *invoiceRepository) GetTotalAmount(ctx context.Context) (decimal.Decimal, error) {
	return r.sumTotals(ctx, nil)
}

// GetOutstandingAmount returns the summed total of pending and overdue invoices.
func (r *invoiceRepository) GetOutstandingAmount(ctx context.Context) (decimal.Decimal, error) {
	statuses := []string{
		string(entity.InvoiceStatusPending),
		string(entity.InvoiceStatusOverdue),
	}
	return r.sumTotals(ctx, statuses)
}

func (r *invoiceRepository) sumTotals(ctx context.Context, statuses []string) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}

	query := r.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Select("COALESCE(SUM(total), 0) AS total")
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	if err := query.Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// isDuplicateKey reports whether err is a unique constraint violation, from
// either GORM's translated error or the raw Postgres driver error.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return true
	}
	return false
}
