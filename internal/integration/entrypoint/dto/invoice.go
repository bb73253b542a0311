package dto

import (
	"time"

	"github.com/biz-manager/backend/internal/application/usecase/invoice"
	"github.com/biz-manager/backend/internal/domain/entity"
)

// InvoiceItemRequest represents one line item in a write request. Totals are
// always recomputed server-side.
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// CreateInvoiceRequest represents the request body for invoice creation. The
// invoice number is generated by the server when omitted or blank.
type CreateInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber,omitempty"`
	ClientName    string               `json:"clientName" binding:"required"`
	ClientEmail   string               `json:"clientEmail,omitempty" binding:"omitempty,email"`
	ClientAddress string               `json:"clientAddress,omitempty"`
	Items         []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate       float64              `json:"taxRate,omitempty" binding:"omitempty,min=0,max=100"`
	IssueDate     string               `json:"issueDate,omitempty"`
	DueDate       string               `json:"dueDate" binding:"required"`
	Status        string               `json:"status,omitempty" binding:"omitempty,oneof=pending paid overdue"`
	Notes         string               `json:"notes,omitempty"`
}

// UpdateInvoiceRequest represents the request body for invoice update.
type UpdateInvoiceRequest struct {
	ClientName    *string              `json:"clientName,omitempty"`
	ClientEmail   *string              `json:"clientEmail,omitempty" binding:"omitempty,email"`
	ClientAddress *string              `json:"clientAddress,omitempty"`
	Items         []InvoiceItemRequest `json:"items,omitempty" binding:"omitempty,min=1,dive"`
	TaxRate       *float64             `json:"taxRate,omitempty" binding:"omitempty,min=0,max=100"`
	IssueDate     *string              `json:"issueDate,omitempty"`
	DueDate       *string              `json:"dueDate,omitempty"`
	Status        *string              `json:"status,omitempty" binding:"omitempty,oneof=pending paid overdue"`
	Notes         *string              `json:"notes,omitempty"`
}

// MarkInvoicePaidRequest represents the request body for marking an invoice
// paid. PaymentDate defaults to the current time and CreateTransaction to
// true when omitted.
type MarkInvoicePaidRequest struct {
	PaymentDate       string `json:"paymentDate,omitempty"`
	CreateTransaction *bool  `json:"createTransaction,omitempty"`
}

// InvoiceItemResponse represents one line item in API responses.
type InvoiceItemResponse struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

// InvoiceResponse represents a single invoice in API responses.
type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoiceNumber"`
	ClientName    string                `json:"clientName"`
	ClientEmail   string                `json:"clientEmail,omitempty"`
	ClientAddress string                `json:"clientAddress,omitempty"`
	Items         []InvoiceItemResponse `json:"items"`
	Subtotal      string                `json:"subtotal"`
	TaxRate       string                `json:"taxRate"`
	Tax           string                `json:"tax"`
	Total         string                `json:"total"`
	IssueDate     string                `json:"issueDate"`
	DueDate       string                `json:"dueDate"`
	Status        string                `json:"status"`
	PaymentDate   *string               `json:"paymentDate,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	DaysUntilDue  int                   `json:"daysUntilDue"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// InvoiceListResponse represents the invoice list payload.
type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Count    int               `json:"count"`
}

// MarkInvoicePaidResponse represents the mark-paid payload: the paid invoice
// plus the companion transaction when one was recorded.
type MarkInvoicePaidResponse struct {
	Invoice     InvoiceResponse      `json:"invoice"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// InvoiceStatsResponse represents the invoice statistics overview payload.
type InvoiceStatsResponse struct {
	TotalInvoices int64  `json:"totalInvoices"`
	PaidInvoices  int64  `json:"paidInvoices"`
	TotalAmount   string `json:"totalAmount"`
	PaidAmount    string `json:"paidAmount"`
	PendingAmount string `json:"pendingAmount"`
	OverdueAmount string `json:"overdueAmount"`
}

// ToInvoiceResponse converts a use case invoice output to its response DTO.
func ToInvoiceResponse(inv *invoice.InvoiceOutput) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price.String(),
			Total:       item.Total.String(),
		}
	}

	var paymentDate *string
	if inv.PaymentDate != nil {
		formatted := inv.PaymentDate.Format(DateFormat)
		paymentDate = &formatted
	}

	return InvoiceResponse{
		ID:            inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		ClientName:    inv.ClientName,
		ClientEmail:   inv.ClientEmail,
		ClientAddress: inv.ClientAddress,
		Items:         items,
		Subtotal:      inv.Subtotal.String(),
		TaxRate:       inv.TaxRate.String(),
		Tax:           inv.Tax.String(),
		Total:         inv.Total.String(),
		IssueDate:     inv.IssueDate.Format(DateFormat),
		DueDate:       inv.DueDate.Format(DateFormat),
		Status:        string(inv.Status),
		PaymentDate:   paymentDate,
		Notes:         inv.Notes,
		DaysUntilDue:  inv.DaysUntilDue,
		CreatedAt:     inv.CreatedAt,
		UpdatedAt:     inv.UpdatedAt,
	}
}

// ToInvoiceListResponse converts a list output to its response DTO.
func ToInvoiceListResponse(output *invoice.ListInvoicesOutput) InvoiceListResponse {
	invoices := make([]InvoiceResponse, len(output.Invoices))
	for i, inv := range output.Invoices {
		invoices[i] = ToInvoiceResponse(inv)
	}
	return InvoiceListResponse{
		Invoices: invoices,
		Count:    output.Count,
	}
}

// ToMarkInvoicePaidResponse converts a mark-paid output to its response DTO.
func ToMarkInvoicePaidResponse(output *invoice.MarkInvoicePaidOutput) MarkInvoicePaidResponse {
	response := MarkInvoicePaidResponse{
		Invoice: ToInvoiceResponse(output.Invoice),
	}

	if output.Transaction != nil {
		t := transactionEntityToResponse(output.Transaction)
		response.Transaction = &t
	}
	return response
}

// ToInvoiceStatsResponse converts a stats output to its response DTO.
func ToInvoiceStatsResponse(output *invoice.GetInvoiceStatsOutput) InvoiceStatsResponse {
	return InvoiceStatsResponse{
		TotalInvoices: output.TotalInvoices,
		PaidInvoices:  output.PaidInvoices,
		TotalAmount:   output.TotalAmount.String(),
		PaidAmount:    output.PaidAmount.String(),
		PendingAmount: output.PendingAmount.String(),
		OverdueAmount: output.OverdueAmount.String(),
	}
}

// transactionEntityToResponse maps a raw transaction entity to the shared
// transaction response shape.
func transactionEntityToResponse(t *entity.Transaction) TransactionResponse {
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
