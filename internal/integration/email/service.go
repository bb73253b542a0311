// Package email provides email queueing and delivery.
package email

import (
	"context"
	"fmt"

	"github.com/biz-manager/backend/internal/application/adapter"
	"github.com/biz-manager/backend/internal/domain/entity"
	domainerror "github.com/biz-manager/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue        adapter.EmailQueueRepository
	businessName string
}

// NewService creates a new email service. businessName appears in subjects
// and template signatures.
func NewService(queue adapter.EmailQueueRepository, businessName string) *Service {
	return &Service{
		queue:        queue,
		businessName: businessName,
	}
}

// QueueInvoiceEmail queues the "your invoice" email for a client.
func (s *Service) QueueInvoiceEmail(ctx context.Context, input adapter.QueueInvoiceEmailInput) error {
	subject := fmt.Sprintf("Invoice %s from %s", input.InvoiceNumber, s.businessName)

	job := entity.NewEmailJob(
		entity.TemplateInvoiceSent,
		input.RecipientEmail,
		input.ClientName,
		subject,
		s.templateData(input),
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue invoice email",
			err,
		)
	}

	return nil
}

// QueuePaymentReceiptEmail queues the payment receipt email after an invoice
// is marked paid.
func (s *Service) QueuePaymentReceiptEmail(ctx context.Context, input adapter.QueueInvoiceEmailInput) error {
	subject := fmt.Sprintf("Payment received for invoice %s", input.InvoiceNumber)

	job := entity.NewEmailJob(
		entity.TemplatePaymentReceipt,
		input.RecipientEmail,
		input.ClientName,
		subject,
		s.templateData(input),
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue payment receipt email",
			err,
		)
	}

	return nil
}

func (s *Service) templateData(input adapter.QueueInvoiceEmailInput) map[string]interface{} {
	return map[string]interface{}{
		"client_name":    input.ClientName,
		"invoice_number": input.InvoiceNumber,
		"total":          input.TotalFormatted,
		"issue_date":     input.IssueDate,
		"due_date":       input.DueDate,
		"payment_date":   input.PaymentDate,
		"notes":          input.Notes,
		"business_name":  s.businessName,
	}
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
