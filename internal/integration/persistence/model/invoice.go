package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/biz-manager/backend/internal/domain/entity"
)

// InvoiceModel represents the invoices table in the database. The unique
// index on InvoiceNumber backs the scan-then-assign numbering scheme: two
// concurrent creates racing to the same number collide here instead of both
// succeeding.
type InvoiceModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceNumber string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	ClientName    string          `gorm:"type:varchar(255);not null"`
	ClientEmail   string          `gorm:"type:varchar(255)"`
	ClientAddress string          `gorm:"type:text"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Tax           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	IssueDate     time.Time       `gorm:"type:timestamptz;not null;index"`
	DueDate       time.Time       `gorm:"type:timestamptz;not null;index"`
	Status        string          `gorm:"type:varchar(10);not null;index"`
	PaymentDate   sql.NullTime    `gorm:"type:timestamptz"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Items []InvoiceItemModel `gorm:"foreignKey:InvoiceID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the InvoiceModel.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel represents the invoice_items table in the database.
type InvoiceItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Quantity    int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Position    int             `gorm:"not null"`
}

// TableName returns the table name for the InvoiceItemModel.
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToEntity converts an InvoiceModel with its items to a domain Invoice entity.
func (m *InvoiceModel) ToEntity() *entity.Invoice {
	var paymentDate *time.Time
	if m.PaymentDate.Valid {
		paymentDate = &m.PaymentDate.Time
	}

	items := make([]entity.InvoiceItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = entity.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
		}
	}

	return &entity.Invoice{
		ID:            m.ID,
		InvoiceNumber: m.InvoiceNumber,
		ClientName:    m.ClientName,
		ClientEmail:   m.ClientEmail,
		ClientAddress: m.ClientAddress,
		Items:         items,
		Subtotal:      m.Subtotal,
		TaxRate:       m.TaxRate,
		Tax:           m.Tax,
		Total:         m.Total,
		IssueDate:     m.IssueDate,
		DueDate:       m.DueDate,
		Status:        entity.InvoiceStatus(m.Status),
		PaymentDate:   paymentDate,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// InvoiceFromEntity creates an InvoiceModel with item rows from a domain
// Invoice entity. Item order is preserved through the position column.
func InvoiceFromEntity(invoice *entity.Invoice) *InvoiceModel {
	var paymentDate sql.NullTime
	if invoice.PaymentDate != nil {
		paymentDate = sql.NullTime{Time: *invoice.PaymentDate, Valid: true}
	}

	items := make([]InvoiceItemModel, len(invoice.Items))
	for i, item := range invoice.Items {
		items[i] = InvoiceItemModel{
			ID:          uuid.New(),
			InvoiceID:   invoice.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
			Position:    i,
		}
	}

	return &InvoiceModel{
		ID:            invoice.ID,
		InvoiceNumber: invoice.InvoiceNumber,
		ClientName:    invoice.ClientName,
		ClientEmail:   invoice.ClientEmail,
		ClientAddress: invoice.ClientAddress,
		Subtotal:      invoice.Subtotal,
		TaxRate:       invoice.TaxRate,
		Tax:           invoice.Tax,
		Total:         invoice.Total,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		Status:        string(invoice.Status),
		PaymentDate:   paymentDate,
		Notes:         invoice.Notes,
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
		Items:         items,
	}
}
